package dto

type CreatePlatformRequest struct {
	Name string `json:"name"`
}

type UpdatePlatformRequest struct {
	Name *string `json:"name"`
}
