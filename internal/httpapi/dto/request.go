package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStoreStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateStorePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type AddFeaturedRequest struct {
	StoreID      int64 `json:"storeId" binding:"required,gt=0"`
	DurationDays int   `json:"durationDays" binding:"required"`
}

type ExtendFeaturedRequest struct {
	DurationDays int `json:"durationDays" binding:"required"`
}

// ReorderFeaturedRequest direction: -1 вверх, 1 вниз
type ReorderFeaturedRequest struct {
	Index     *int `json:"index" binding:"required,gte=0"`
	Direction int  `json:"direction" binding:"required,oneof=-1 1"`
}
