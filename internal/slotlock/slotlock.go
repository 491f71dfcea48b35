package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Lock consultivo por (profissional, data) para serializar o
// check-then-write do agendamento. Opcional: sem Redis configurado o
// Locker é nil e a corrida documentada fica como está (o usuário ainda
// pode confirmar double-booking explicitamente).

const lockTTL = 10 * time.Second

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type Locker struct {
	rdb *redis.Client
}

// New devolve nil quando addr está vazio (lock desligado).
func New(addr, password string) *Locker {
	if addr == "" {
		return nil
	}
	return &Locker{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func key(staffID uint, date string) string {
	return fmt.Sprintf("slotlock:%d:%s", staffID, date)
}

// Acquire tenta obter o lock. release deve ser chamado sempre que ok.
// Locker nil: sempre ok, release é no-op.
func (l *Locker) Acquire(
	ctx context.Context,
	staffID uint,
	date string,
) (release func(), ok bool, err error) {

	if l == nil || l.rdb == nil {
		return func() {}, true, nil
	}

	k := key(staffID, date)
	token := uuid.NewString()

	acquired, err := l.rdb.SetNX(ctx, k, token, lockTTL).Result()
	if err != nil {
		return nil, false, err
	}
	if !acquired {
		return nil, false, nil
	}

	release = func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{k}, token).Err()
	}
	return release, true, nil
}
