package models

// ShootRow is one raw row of the shoot history export. Tags carry the exact
// header names; columns missing from the file decode as empty strings.
type ShootRow struct {
	ClientEmail       string `csv:"Client Email"`
	ClientName        string `csv:"Client"`
	ClientPhone       string `csv:"Client Phone"`
	ClientCompany     string `csv:"Client Company"`
	CreatedBy         string `csv:"User Account Created By"`
	Scheduled         string `csv:"Scheduled"`
	Completed         string `csv:"Completed"`
	Photographer      string `csv:"Photographer"`
	Services          string `csv:"Services"`
	Address           string `csv:"Address"`
	Address2          string `csv:"Address2"`
	City              string `csv:"City"`
	State             string `csv:"State"`
	Zip               string `csv:"Zip"`
	BaseQuote         string `csv:"Base Quote"`
	Tax               string `csv:"Tax"`
	TaxAmount         string `csv:"Tax Amount"`
	TotalQuote        string `csv:"Total Quote"`
	TotalPaid         string `csv:"Total Paid"`
	LastPaymentDate   string `csv:"Last Payment Date"`
	LastPaymentType   string `csv:"Last Payment Type"`
	TourPurchased     string `csv:"Tour Purchased"`
	ShootNotes        string `csv:"Shoot Notes"`
	PhotographerNotes string `csv:"Photographer Notes"`
}

// Client is a customer identified by email. Email keeps the casing of the
// first row it was seen on.
type Client struct {
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Phone     string `json:"phone" bson:"phone"`
	Company   string `json:"company" bson:"company"`
	CreatedBy string `json:"created_by" bson:"created_by"`
}

// Shoot is one appointment. ClientEmail is the lowercased client key.
// Nil date pointers mean the source cell was empty and the layout
// renders empties as null.
type Shoot struct {
	ClientEmail       string  `json:"client_email" bson:"client_email"`
	ScheduledDate     *string `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate     *string `json:"completed_date" bson:"completed_date"`
	Photographer      string  `json:"photographer" bson:"photographer"`
	Services          string  `json:"services" bson:"services"`
	Address           string  `json:"address" bson:"address"`
	Address2          string  `json:"address2" bson:"address2"`
	City              string  `json:"city" bson:"city"`
	State             string  `json:"state" bson:"state"`
	Zip               string  `json:"zip" bson:"zip"`
	BaseQuote         string  `json:"base_quote" bson:"base_quote"`
	TaxRate           string  `json:"tax_rate" bson:"tax_rate"`
	TaxAmount         string  `json:"tax_amount" bson:"tax_amount"`
	TotalQuote        string  `json:"total_quote" bson:"total_quote"`
	TotalPaid         string  `json:"total_paid" bson:"total_paid"`
	LastPaymentDate   *string `json:"last_payment_date" bson:"last_payment_date"`
	LastPaymentType   string  `json:"last_payment_type" bson:"last_payment_type"`
	TourPurchased     string  `json:"tour_purchased" bson:"tour_purchased"`
	ShootNotes        string  `json:"shoot_notes" bson:"shoot_notes"`
	PhotographerNotes string  `json:"photographer_notes" bson:"photographer_notes"`
	CreatedBy         string  `json:"created_by" bson:"created_by"`
}
