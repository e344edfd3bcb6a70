package domain

// Reservation service windows, half-hour slots for lunch and dinner.
var TimeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
}

// ReservationInput is the public submission payload. Status is accepted in
// the body but ignored: public creations always start pending.
type ReservationInput struct {
	Name    string `json:"name" validate:"required,min=3"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required,oneof=12:00 12:30 13:00 13:30 14:00 14:30 19:00 19:30 20:00 20:30 21:00 21:30 22:00"`
	Guests  int    `json:"guests" validate:"required,min=1,max=20"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ReservationUpdate carries a partial admin edit; nil fields are untouched.
type ReservationUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Guests  *int    `json:"guests"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

type MenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Image       string  `json:"image" validate:"required"`
	Ingredients string  `json:"ingredients" validate:"required"`
	CategoryID  *int    `json:"categoryId"`
	IsAvailable *bool   `json:"isAvailable"`
	IsFeatured  *bool   `json:"isFeatured"`
}

type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Ingredients *string  `json:"ingredients"`
	CategoryID  *int     `json:"categoryId"`
	IsAvailable *bool    `json:"isAvailable"`
	IsFeatured  *bool    `json:"isFeatured"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type CategoryUpdate struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type StaffInput struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Bio      string `json:"bio" validate:"required"`
	Image    string `json:"image" validate:"required"`
}

type StaffUpdate struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type SocialMediaInput struct {
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

type SocialMediaUpdate struct {
	Name     *string `json:"name"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"isActive"`
}

type LocationUpdate struct {
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	MapCoordinates *string `json:"mapCoordinates"`
	Hours          *string `json:"hours"`
}

type CredentialsInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
