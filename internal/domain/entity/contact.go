package entity

// ContactMessage is a support inquiry submitted through the contact form.
type ContactMessage struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	Category    string
	SubCategory string
}

// Subscriber is a mailing-list signup.
type Subscriber struct {
	Name  string
	Email string
}
