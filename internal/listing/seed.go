package listing

// Seed returns the fixed demo catalog compiled into the binary. Seed
// records are never written to the store; callers get a fresh copy so the
// canonical set cannot be mutated.
func Seed() []Listing {
	out := make([]Listing, len(seed))
	copy(out, seed)
	return out
}

var seed = []Listing{
	{
		ID:        "1",
		Title:     "Calculus: Early Transcendentals",
		Author:    "James Stewart",
		Subject:   "Mathematics",
		Semester:  "Fall 2024",
		Condition: "Good",
		Price:     960,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Sarah M.",
		Rating:    4.5,
		Location:  "North Campus",
		WhatsApp:  "919876543210",
	},
	{
		ID:        "2",
		Title:     "Introduction to Psychology",
		Author:    "David G. Myers",
		Subject:   "Psychology",
		Semester:  "Spring 2024",
		Condition: "Excellent",
		Price:     680,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Mike R.",
		Rating:    5.0,
		Location:  "South Campus",
		WhatsApp:  "919876543211",
	},
	{
		ID:        "3",
		Title:     "Organic Chemistry",
		Author:    "Paula Yurkanis Bruice",
		Subject:   "Chemistry",
		Semester:  "Fall 2024",
		Condition: "Fair",
		Price:     760,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Emma L.",
		Rating:    4.0,
		Location:  "Science Building",
		WhatsApp:  "919876543212",
	},
	{
		ID:        "4",
		Title:     "Principles of Economics",
		Author:    "N. Gregory Mankiw",
		Subject:   "Economics",
		Semester:  "Spring 2024",
		Condition: "Good",
		Price:     880,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Alex K.",
		Rating:    4.2,
		Location:  "Business School",
		WhatsApp:  "919876543213",
	},
	{
		ID:        "5",
		Title:     "Campbell Biology",
		Author:    "Jane B. Reece",
		Subject:   "Biology",
		Semester:  "Fall 2024",
		Condition: "Excellent",
		Price:     1120,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Lisa P.",
		Rating:    4.8,
		Location:  "Life Sciences",
		WhatsApp:  "919876543214",
	},
	{
		ID:        "6",
		Title:     "The Art of Public Speaking",
		Author:    "Stephen E. Lucas",
		Subject:   "Communications",
		Semester:  "Spring 2024",
		Condition: "Good",
		Price:     600,
		Image:     "/placeholder.svg?height=200&width=150",
		Seller:    "Jordan T.",
		Rating:    4.3,
		Location:  "Liberal Arts",
		WhatsApp:  "919876543215",
	},
}
