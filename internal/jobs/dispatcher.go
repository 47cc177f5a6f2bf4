package jobs

import (
	"github.com/hibiken/asynq"
)

// Dispatcher is the message-passing boundary the services talk to: kirim
// notifikasi mutasi tanpa menunggu transport mail di request path.
type Dispatcher interface {
	EntityMutation(action, entity string, names ...string) error
	Close() error
}

type asynqDispatcher struct {
	client *asynq.Client
}

func NewDispatcher(redisAddr string) Dispatcher {
	return &asynqDispatcher{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

func (d *asynqDispatcher) EntityMutation(action, entity string, names ...string) error {
	task, err := NewEntityMutationEmailTask(action, entity, names)
	if err != nil {
		return err
	}
	_, err = d.client.Enqueue(task)
	return err
}

func (d *asynqDispatcher) Close() error {
	return d.client.Close()
}
