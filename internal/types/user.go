//nolint:revive // types is a standard Go package name pattern
package types

// User represents a user record returned by GET /users and GET /users/{id}
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Company  Company `json:"company"`
	Address  Address `json:"address"`
}

// Company is the employer block nested in a user record
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// Address is the postal address nested in a user record
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode,omitempty"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API returns them (strings)
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Initial returns the first letter of the user's name, used as an avatar.
func (u *User) Initial() string {
	for _, r := range u.Name {
		return string(r)
	}
	return "?"
}
