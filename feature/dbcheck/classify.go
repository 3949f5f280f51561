package dbcheck

import "strings"

// Category groups connection failures that share a remedy.
type Category string

const (
	CategoryNone              Category = ""
	CategoryConnectionRefused Category = "connection_refused"
	CategoryAuthentication    Category = "authentication"
	CategoryHostNotFound      Category = "host_not_found"
	CategoryOther             Category = "other"
)

// Advice is the remediation text printed for a Category.
type Advice struct {
	Heading string
	Steps   []string
}

// needles are matched case-insensitively against the error text, in order.
// Both the Node-style codes and the Go resolver/dialer wording are accepted.
var needles = []struct {
	category Category
	terms    []string
}{
	{CategoryConnectionRefused, []string{"econnrefused", "connection refused"}},
	{CategoryAuthentication, []string{"authentication", "auth error"}},
	{CategoryHostNotFound, []string{"enotfound", "no such host"}},
}

var advice = map[Category]Advice{
	CategoryConnectionRefused: {
		Heading: "Possible solutions:",
		Steps: []string{
			"Make sure MongoDB is running",
			"Check if the connection string is correct",
			"Verify the port (default: 27017)",
		},
	},
	CategoryAuthentication: {
		Heading: "Authentication error:",
		Steps: []string{
			"Check username and password in connection string",
			"Make sure the user has proper permissions",
		},
	},
	CategoryHostNotFound: {
		Heading: "DNS/Network error:",
		Steps: []string{
			"Check your internet connection (for Atlas)",
			"Verify the hostname in connection string",
		},
	},
}

// Classify maps err to a Category by inspecting its message.
func Classify(err error) Category {
	if err == nil {
		return CategoryNone
	}

	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		for _, term := range n.terms {
			if strings.Contains(msg, term) {
				return n.category
			}
		}
	}
	return CategoryOther
}

// Advice returns remediation hints for c. Other and None have none.
func (c Category) Advice() (Advice, bool) {
	a, ok := advice[c]
	return a, ok
}
