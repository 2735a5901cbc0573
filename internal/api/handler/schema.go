package handler

// errorResponse documents the error envelope in the API docs.
type errorResponse struct {
	Message string `json:"message" example:"product not found"`
}

// --- Appointments ---

type bookAppointmentRequest struct {
	Name    string `json:"name"    validate:"required"                     example:"João Silva"`
	Phone   string `json:"phone"   validate:"required"                     example:"(35) 99999-0000"`
	Service string `json:"service" validate:"required"                     example:"Corte Masculino"`
	Date    string `json:"date"    validate:"required,datetime=2006-01-02" example:"2025-03-10"`
	Time    string `json:"time"    validate:"required,slot"                example:"09:00"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required" example:"cancelled"`
}

type dateParam struct {
	Date string `param:"date" validate:"required,datetime=2006-01-02"`
}

type listAppointmentsQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// --- Products ---

type createProductRequest struct {
	Name     string   `json:"name"     validate:"required"       example:"Blazer Executivo"`
	Price    *float64 `json:"price"    validate:"required,gte=0" example:"389.9"`
	Image    string   `json:"image"    validate:"required"       example:"https://images.unsplash.com/photo-1507679799987-c73779587ccf"`
	Category string   `json:"category" validate:"required"       example:"blazers"`
}

// updateProductRequest lists the only keys a product PATCH may carry.
type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
}

// --- Gallery ---

type createGalleryImageRequest struct {
	Title string `json:"title" validate:"required" example:"Fade Clássico"`
	Image string `json:"image" validate:"required" example:"https://images.unsplash.com/photo-1621605815971-fbc98d665033"`
}

// --- Checkout ---

type checkoutItemRequest struct {
	ProductID string `json:"productId" validate:"required"             example:"1"`
	Quantity  int    `json:"quantity"  validate:"required,min=1,max=999" example:"2"`
}

type checkoutRequest struct {
	Items []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
}
