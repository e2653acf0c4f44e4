// Package types provides type definitions for the records exchanged with the placeholder REST API.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Post represents a post record returned by GET /posts/{id} and GET /posts?userId={id}
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
