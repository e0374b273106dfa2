package http

import (
	"time"

	"condopay-srv/internal/apartment"
	"condopay-srv/internal/model"
)

type createApartmentReq struct {
	Number        string     `json:"number" binding:"required"`
	Floor         int        `json:"floor" binding:"required"`
	ResidentName  string     `json:"residentName"`
	ResidentEmail string     `json:"residentEmail"`
	Amount        float64    `json:"amount"`
	DueDate       *time.Time `json:"dueDate"`
	Paid          bool       `json:"paid"`
}

func (req createApartmentReq) toInput() apartment.CreateInput {
	return apartment.CreateInput{
		Number:        req.Number,
		Floor:         req.Floor,
		ResidentName:  req.ResidentName,
		ResidentEmail: req.ResidentEmail,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Paid:          req.Paid,
	}
}

type updateApartmentReq struct {
	ResidentName  *string    `json:"residentName"`
	ResidentEmail *string    `json:"residentEmail"`
	Amount        *float64   `json:"amount"`
	DueDate       *time.Time `json:"dueDate"`
	Paid          *bool      `json:"paid"`
}

func (req updateApartmentReq) toInput(id string) apartment.UpdateInput {
	return apartment.UpdateInput{
		ID:            id,
		ResidentName:  req.ResidentName,
		ResidentEmail: req.ResidentEmail,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Paid:          req.Paid,
	}
}

type payReq struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

type notifyReq struct {
	Message string `json:"message"`
}

type apartmentResp struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Floor         int        `json:"floor"`
	ResidentName  string     `json:"residentName"`
	ResidentEmail string     `json:"residentEmail"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"dueDate"`
	Paid          bool       `json:"paid"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	LastNotified  *time.Time `json:"lastNotified,omitempty"`
}

func newApartmentResp(apt model.Apartment) apartmentResp {
	return apartmentResp{
		ID:            apt.ID,
		Number:        apt.Number,
		Floor:         apt.Floor,
		ResidentName:  apt.ResidentName,
		ResidentEmail: apt.ResidentEmail,
		Amount:        apt.Amount,
		DueDate:       apt.DueDate,
		Paid:          apt.Paid,
		PaidAt:        apt.PaidAt,
		LastNotified:  apt.LastNotified,
	}
}

func newApartmentListResp(apts []model.Apartment) []apartmentResp {
	resp := make([]apartmentResp, 0, len(apts))
	for _, apt := range apts {
		resp = append(resp, newApartmentResp(apt))
	}
	return resp
}

type paymentResp struct {
	ID          int64     `json:"id"`
	ApartmentID string    `json:"apartmentId"`
	Amount      float64   `json:"amount"`
	PaidAt      time.Time `json:"paidAt"`
	Note        string    `json:"note,omitempty"`
}

func newPaymentListResp(payments []model.Payment) []paymentResp {
	resp := make([]paymentResp, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, paymentResp{
			ID:          p.ID,
			ApartmentID: p.ApartmentID,
			Amount:      p.Amount,
			PaidAt:      p.PaidAt,
			Note:        p.Note,
		})
	}
	return resp
}

type notifyResp struct {
	LastNotified time.Time `json:"lastNotified"`
}

type dashboardResp struct {
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Unpaid  int64 `json:"unpaid"`
	Overdue int64 `json:"overdue"`
}
