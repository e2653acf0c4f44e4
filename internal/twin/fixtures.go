package twin

import (
	"fmt"
	"strings"

	"github.com/jonathan/api-demo/internal/types"
)

const (
	// UserCount is the number of seeded users.
	UserCount = 10
	// PostsPerUser is the number of seeded posts owned by each user.
	PostsPerUser = 10
	// CreatedPostID is the id the API assigns to every created post; nothing is persisted.
	CreatedPostID = UserCount*PostsPerUser + 1
)

var seedUsers = []types.User{
	{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz", Phone: "1-770-736-8031 x56442", Website: "hildegard.org",
		Company: types.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net", BS: "harness real-time e-markets"},
		Address: types.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874", Geo: types.Geo{Lat: "-37.3159", Lng: "81.1496"}}},
	{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv", Phone: "010-692-6593 x09125", Website: "anastasia.net",
		Company: types.Company{Name: "Deckow-Crist", CatchPhrase: "Proactive didactic contingency", BS: "synergize scalable supply-chains"},
		Address: types.Address{Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", Zipcode: "90566-7771", Geo: types.Geo{Lat: "-43.9509", Lng: "-34.4618"}}},
	{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net", Phone: "1-463-123-4447", Website: "ramiro.info",
		Company: types.Company{Name: "Romaguera-Jacobson", CatchPhrase: "Face to face bifurcated interface", BS: "e-enable strategic applications"},
		Address: types.Address{Street: "Douglas Extension", Suite: "Suite 847", City: "McKenziehaven", Zipcode: "59590-4157", Geo: types.Geo{Lat: "-68.6102", Lng: "-47.0653"}}},
	{ID: 4, Name: "Patricia Lebsack", Username: "Karianne", Email: "Julianne.OConner@kory.org", Phone: "493-170-9623 x156", Website: "kale.biz",
		Company: types.Company{Name: "Robel-Corkery", CatchPhrase: "Multi-tiered zero tolerance productivity", BS: "transition cutting-edge web services"},
		Address: types.Address{Street: "Hoeger Mall", Suite: "Apt. 692", City: "South Elvis", Zipcode: "53919-4257", Geo: types.Geo{Lat: "29.4572", Lng: "-164.2990"}}},
	{ID: 5, Name: "Chelsey Dietrich", Username: "Kamren", Email: "Lucio_Hettinger@annie.ca", Phone: "(254)954-1289", Website: "demarco.info",
		Company: types.Company{Name: "Keebler LLC", CatchPhrase: "User-centric fault-tolerant solution", BS: "revolutionize end-to-end systems"},
		Address: types.Address{Street: "Skiles Walks", Suite: "Suite 351", City: "Roscoeview", Zipcode: "33263", Geo: types.Geo{Lat: "-31.8129", Lng: "62.5342"}}},
	{ID: 6, Name: "Mrs. Dennis Schulist", Username: "Leopoldo_Corkery", Email: "Karley_Dach@jasper.info", Phone: "1-477-935-8478 x6430", Website: "ola.org",
		Company: types.Company{Name: "Considine-Lockman", CatchPhrase: "Synchronised bottom-line interface", BS: "e-enable innovative applications"},
		Address: types.Address{Street: "Norberto Crossing", Suite: "Apt. 950", City: "South Christy", Zipcode: "23505-1337", Geo: types.Geo{Lat: "-71.4197", Lng: "71.7478"}}},
	{ID: 7, Name: "Kurtis Weissnat", Username: "Elwyn.Skiles", Email: "Telly.Hoeger@billy.biz", Phone: "210.067.6132", Website: "elvis.io",
		Company: types.Company{Name: "Johns Group", CatchPhrase: "Configurable multimedia task-force", BS: "generate enterprise e-tailers"},
		Address: types.Address{Street: "Rex Trail", Suite: "Suite 280", City: "Howemouth", Zipcode: "58804-1099", Geo: types.Geo{Lat: "24.8918", Lng: "21.8984"}}},
	{ID: 8, Name: "Nicholas Runolfsdottir V", Username: "Maxime_Nienow", Email: "Sherwood@rosamond.me", Phone: "586.493.6943 x140", Website: "jacynthe.com",
		Company: types.Company{Name: "Abernathy Group", CatchPhrase: "Implemented secondary concept", BS: "e-enable extensible e-tailers"},
		Address: types.Address{Street: "Ellsworth Summit", Suite: "Suite 729", City: "Aliyaview", Zipcode: "45169", Geo: types.Geo{Lat: "-14.3990", Lng: "-120.7677"}}},
	{ID: 9, Name: "Glenna Reichert", Username: "Delphine", Email: "Chaim_McDermott@dana.io", Phone: "(775)976-6794 x41206", Website: "conrad.com",
		Company: types.Company{Name: "Yost and Sons", CatchPhrase: "Switchable contextually-based project", BS: "aggregate real-time technologies"},
		Address: types.Address{Street: "Dayna Park", Suite: "Suite 449", City: "Bartholomebury", Zipcode: "76495-3109", Geo: types.Geo{Lat: "24.6463", Lng: "-168.8889"}}},
	{ID: 10, Name: "Clementina DuBuque", Username: "Moriah.Stanton", Email: "Rey.Padberg@karina.biz", Phone: "024-648-3804", Website: "ambrose.net",
		Company: types.Company{Name: "Hoeger LLC", CatchPhrase: "Centralized empowering task-force", BS: "target end-to-end models"},
		Address: types.Address{Street: "Kattie Turnpike", Suite: "Suite 198", City: "Lebsackbury", Zipcode: "31428-2261", Geo: types.Geo{Lat: "-38.2386", Lng: "57.2232"}}},
}

var loremWords = strings.Fields(`sunt aut facere repellat provident occaecati excepturi optio
reprehenderit qui est esse dolorem ea molestias quasi exercitationem nesciunt magnam
eum et rerum voluptatem consequatur dolor beatae soluta vero eveniet atque quis
nostrum nemo ullam in qui laborum odit dignissimos asperiores ipsam mollitia`)

// loremText returns a deterministic run of n words starting at offset.
func loremText(offset, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = loremWords[(offset+i*5)%len(loremWords)]
	}
	return strings.Join(words, " ")
}

func seedPosts() []types.Post {
	posts := make([]types.Post, 0, UserCount*PostsPerUser)
	for id := 1; id <= UserCount*PostsPerUser; id++ {
		posts = append(posts, types.Post{
			ID:     id,
			UserID: (id-1)/PostsPerUser + 1,
			Title:  loremText(id, 4+id%6),
			Body:   fmt.Sprintf("%s\n%s", loremText(id*3, 12), loremText(id*5, 10)),
		})
	}
	return posts
}

// Users returns a copy of the seeded users.
func Users() []types.User {
	out := make([]types.User, len(seedUsers))
	copy(out, seedUsers)
	return out
}

// Posts returns the seeded posts.
func Posts() []types.Post {
	return seedPosts()
}
