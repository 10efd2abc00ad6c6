package chats

import "time"

// Sender identifica quién mandó el mensaje dentro del hilo.
// @Enum user, vet
type Sender string

const (
	SenderUser Sender = "user"
	SenderVet  Sender = "vet"
)

type Message struct {
	ID     string    `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"time"`
}

// Thread es la conversación entre un dueño y la veterinaria. Se crea al
// primer mensaje y de ahí en más es append-only: nunca se reordena ni se
// borra nada.
type Thread struct {
	UserEmail string    `json:"user"`
	VetEmail  string    `json:"vet"`
	Messages  []Message `json:"messages"`
}
