package domain

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod normalizes a client-supplied payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return PaymentCash, nil
	case "card":
		return PaymentCard, nil
	default:
		return "", Invalid(fmt.Sprintf("unknown payment method %q", s))
	}
}

// SaleTransaction is the record of one completed checkout. It is append-only:
// nothing updates a transaction after the checkout commits.
type SaleTransaction struct {
	ID                string         `json:"id"`
	TransactionNumber string         `json:"transactionNumber"`
	TotalAmountPaise  int64          `json:"totalAmountPaise"`
	PaymentMethod     PaymentMethod  `json:"paymentMethod"`
	CustomerName      *string        `json:"customerName,omitempty"`
	CustomerPhone     *string        `json:"customerPhone,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	CreatedBy         string         `json:"createdBy,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	Items             []SaleLineItem `json:"items,omitempty"`
}

// SaleLineItem freezes one cart line at sale time. UnitPricePaise is copied
// from inventory when the sale commits, so history survives later price edits.
type SaleLineItem struct {
	ID              string    `json:"id"`
	TransactionID   string    `json:"transactionId"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName,omitempty"`
	Quantity        int       `json:"quantity"`
	UnitPricePaise  int64     `json:"unitPricePaise"`
	TotalPricePaise int64     `json:"totalPricePaise"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DailySales aggregates completed transactions for one calendar day.
type DailySales struct {
	Day          time.Time `json:"day"`
	Transactions int       `json:"transactions"`
	RevenuePaise int64     `json:"revenuePaise"`
}
