// Package jobs berisi definisi task notifikasi beserta worker yang
// mengeksekusinya dari queue.
package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeEntityMutationEmail = "notification:entity_mutation"

// Action kinds, mengikuti nama aksi controller.
const (
	ActionStore   = "store"
	ActionUpdate  = "update"
	ActionDestroy = "destroy"
)

// Entity names as used in subjects and bodies.
const (
	EntityKategori = "kategori"
	EntityMenu     = "menu"
)

// EntityMutationEmailPayload describes one mutation to announce: aksi apa,
// entitas apa, dan nama baris yang terdampak (bisa lebih dari satu untuk
// bulk destroy).
type EntityMutationEmailPayload struct {
	Action string   `json:"action"`
	Entity string   `json:"entity"`
	Names  []string `json:"names"`
}

func NewEntityMutationEmailTask(action, entity string, names []string) (*asynq.Task, error) {
	payload, err := json.Marshal(EntityMutationEmailPayload{
		Action: action,
		Entity: entity,
		Names:  names,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TypeEntityMutationEmail,
		payload,
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	), nil
}
