package catalog

type CreateCampRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type CreateSiteRequest struct {
	Name      string `json:"name" binding:"required"`
	BasePrice string `json:"base_price" binding:"required"`
	Currency  string `json:"currency"`
	Capacity  int    `json:"capacity"`
}
