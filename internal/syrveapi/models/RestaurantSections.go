package models

type AvailableRestaurantSectionsRequest struct {
	TerminalGroupIds []string `json:"terminalGroupIds"`
	ReturnSchema     bool     `json:"returnSchema"`
	Revision         int      `json:"revision"`
}

type AvailableRestaurantSectionsResponse struct {
	RestaurantSections []RestaurantSection `json:"restaurantSections"`
}

type RestaurantSection struct {
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}

type Table struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
