//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// NewPost is the request body of POST /posts
type NewPost struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	UserID int    `json:"userId" validate:"required,min=1"`
}

// DefaultNewPost is the fixed payload sent by the "send post" action.
var DefaultNewPost = NewPost{
	Title:  "New React Post",
	Body:   "This was sent using Axios POST method!",
	UserID: 1,
}

// Validate validates the NewPost using the validator.
func (p *NewPost) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
