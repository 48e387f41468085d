package event

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// Args holds the named fields of an event. Values are plain strings, numbers or
// addresses so indexers can decode them without knowing the emitter.
type Args map[string]interface{}

// Event is a change record emitted by a mutating operation. It is written in
// the same transaction as the change it describes.
type Event struct {
	Id        string         `json:"id" bson:"id"`
	Contract  domain.Address `json:"contract" bson:"contract"`
	Name      string         `json:"name" bson:"name"`
	Args      Args           `json:"args" bson:"args"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	Contract *domain.Address
	Name     *string
	Offset   *int32
	Limit    *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithContract(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		c := contract.ToLower()
		options.Contract = &c
		return nil
	}
}

func WithName(name string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Name = &name
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, e *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

// Emitter records events on behalf of the auction components.
type Emitter interface {
	Emit(c ctx.Ctx, contract domain.Address, name string, args Args) error
}

type UseCase interface {
	Emitter
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
