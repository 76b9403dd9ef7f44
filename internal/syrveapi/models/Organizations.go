package models

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrganizationsResponse struct {
	Organizations []Organization `json:"organizations"`
}
