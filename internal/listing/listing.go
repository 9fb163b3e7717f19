package listing

import "errors"

// ErrNotFound is returned when a listing is not found in the catalog.
var ErrNotFound = errors.New("listing not found")

// ErrInvalidPrice is returned when a submitted price is not a
// non-negative number.
var ErrInvalidPrice = errors.New("invalid price")

// Listing represents one book offered by a seller.
//
// The JSON shape mirrors the persisted slot format; every field except id
// is optional on read so older records decode cleanly.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subject     string  `json:"subject"`
	Semester    string  `json:"semester,omitempty"`
	Condition   string  `json:"condition"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Seller      string  `json:"seller"`
	Rating      float64 `json:"rating"`
	Location    string  `json:"location"`
	WhatsApp    string  `json:"whatsapp"`
	Description string  `json:"description,omitempty"`
}

// DefaultRating is assigned to every newly submitted listing.
const DefaultRating = 5.0

// Subjects is the set of subjects offered on the submission form. The
// store does not enforce membership; filter facets are derived from the
// catalog itself, not from this list.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Psychology",
	"Economics",
	"History",
	"English",
	"Computer Science",
	"Communications",
	"Business",
	"Other",
}

// Conditions is the set of book conditions offered on the submission form.
var Conditions = []string{"Excellent", "Good", "Fair"}

// Locations is the set of campus pickup spots offered on the submission form.
var Locations = []string{
	"North Campus",
	"South Campus",
	"East Campus",
	"West Campus",
	"Science Building",
	"Business School",
	"Liberal Arts",
	"Life Sciences",
	"Engineering",
}
