package dto

type SignupRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Price       float64  `json:"price" binding:"gte=0"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	Tags        []string `json:"tags"`
}

// ListingQuery is bound from the explore query string. MaxPrice stays a
// string so an empty value can mean "no limit".
type ListingQuery struct {
	Search   string `form:"q"`
	Type     string `form:"type"`
	MaxPrice string `form:"max_price"`
}
