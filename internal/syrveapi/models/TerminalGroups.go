package models

type TerminalGroupsRequest struct {
	OrganizationIds    []string `json:"organizationIds"`
	IncludeDisabled    bool     `json:"includeDisabled"`
	ReturnExternalData []string `json:"returnExternalData"`
}

// блок групп одной организации; терминальные группы могут возвращаться
// в двух полях: terminalGroups и terminalGroupsInSleep
type TerminalGroupsResponse struct {
	TerminalGroups        []TerminalGroupBlock `json:"terminalGroups"`
	TerminalGroupsInSleep []TerminalGroupBlock `json:"terminalGroupsInSleep"`
}

type TerminalGroupBlock struct {
	OrganizationID string              `json:"organizationId"`
	Items          []TerminalGroupItem `json:"items"`
}

type TerminalGroupItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TerminalGroup - плоское представление после слияния обоих блоков
type TerminalGroup struct {
	ID             string
	Name           string
	OrganizationID string
}
