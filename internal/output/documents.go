package output

import "shootseeder/internal/models"

// Each layout has its own field set and key order; these mirror the
// documents downstream seeders already consume.

type seederClient struct {
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	Company   string `json:"company" bson:"company"`
	CreatedBy string `json:"created_by" bson:"created_by"`
}

type historyShoot struct {
	ClientEmail       string  `json:"client_email" bson:"client_email"`
	ScheduledDate     *string `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate     *string `json:"completed_date" bson:"completed_date"`
	Photographer      string  `json:"photographer" bson:"photographer"`
	Services          string  `json:"services" bson:"services"`
	Address           string  `json:"address" bson:"address"`
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

type scheduleShoot struct {
	ClientEmail       string  `json:"client_email" bson:"client_email"`
	PhotographerName  string  `json:"photographer_name" bson:"photographer_name"`
	ScheduledDate     *string `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate     *string `json:"completed_date" bson:"completed_date"`
	Address           string  `json:"address" bson:"address"`
	Address2          string  `json:"address2" bson:"address2"`
	City              string  `json:"city" bson:"city"`
	State             string  `json:"state" bson:"state"`
	Zip               string  `json:"zip" bson:"zip"`
	Services          string  `json:"services" bson:"services"`
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

type historyDocument struct {
	Clients []models.Client `json:"clients"`
	Shoots  []historyShoot  `json:"shoots"`
}

func seederClients(clients []models.Client) []seederClient {
	out := make([]seederClient, 0, len(clients))
	for _, c := range clients {
		out = append(out, seederClient{
			Email:     c.Email,
			Phone:     c.Phone,
			Company:   c.Company,
			CreatedBy: c.CreatedBy,
		})
	}
	return out
}

func historyShoots(shoots []models.Shoot) []historyShoot {
	out := make([]historyShoot, 0, len(shoots))
	for _, s := range shoots {
		out = append(out, historyShoot{
			ClientEmail:       s.ClientEmail,
			ScheduledDate:     s.ScheduledDate,
			CompletedDate:     s.CompletedDate,
			Photographer:      s.Photographer,
			Services:          s.Services,
			Address:           s.Address,
			City:              s.City,
			State:             s.State,
			Zip:               s.Zip,
			BaseQuote:         s.BaseQuote,
			TaxRate:           s.TaxRate,
			TaxAmount:         s.TaxAmount,
			TotalQuote:        s.TotalQuote,
			TotalPaid:         s.TotalPaid,
			LastPaymentDate:   s.LastPaymentDate,
			LastPaymentType:   s.LastPaymentType,
			TourPurchased:     s.TourPurchased,
			ShootNotes:        s.ShootNotes,
			PhotographerNotes: s.PhotographerNotes,
			CreatedBy:         s.CreatedBy,
		})
	}
	return out
}

func scheduleShoots(shoots []models.Shoot) []scheduleShoot {
	out := make([]scheduleShoot, 0, len(shoots))
	for _, s := range shoots {
		out = append(out, scheduleShoot{
			ClientEmail:       s.ClientEmail,
			PhotographerName:  s.Photographer,
			ScheduledDate:     s.ScheduledDate,
			CompletedDate:     s.CompletedDate,
			Address:           s.Address,
			Address2:          s.Address2,
			City:              s.City,
			State:             s.State,
			Zip:               s.Zip,
			Services:          s.Services,
			BaseQuote:         s.BaseQuote,
			TaxRate:           s.TaxRate,
			TaxAmount:         s.TaxAmount,
			TotalQuote:        s.TotalQuote,
			TotalPaid:         s.TotalPaid,
			LastPaymentDate:   s.LastPaymentDate,
			LastPaymentType:   s.LastPaymentType,
			TourPurchased:     s.TourPurchased,
			ShootNotes:        s.ShootNotes,
			PhotographerNotes: s.PhotographerNotes,
			CreatedBy:         s.CreatedBy,
		})
	}
	return out
}
