package handlers

import "jamjam-resort-api/models"

type customerRequest struct {
	Name         string      `json:"name" binding:"required"`
	Mobile       string      `json:"mobile" binding:"required"`
	WalletAmount interface{} `json:"walletAmount"`
}

type gameRequest struct {
	Name string      `json:"name" binding:"required"`
	Rate interface{} `json:"rate" binding:"required"`
}

type bookingRequest struct {
	Items       interface{} `json:"items" binding:"required"`
	TotalAmount interface{} `json:"totalAmount" binding:"required"`
	Service     string      `json:"service" binding:"required"`
}

type taxSettingRequest struct {
	ServiceID  string   `json:"serviceId" binding:"required"`
	TaxPercent *float64 `json:"taxPercent" binding:"required,min=0,max=100"`
}

type taxPercentRequest struct {
	TaxPercent *float64 `json:"taxPercent" binding:"required,min=0,max=100"`
}

type kitchenStatusRequest struct {
	Status models.KitchenStatus `json:"status" binding:"required"`
}

type paymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type uploadURLRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FileType string `json:"fileType"`
}

type uploadRequest struct {
	Base64Data string `json:"base64Data" binding:"required"`
	FileName   string `json:"fileName" binding:"required"`
	FileType   string `json:"fileType"`
}
