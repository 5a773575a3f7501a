package dto

type StatusInput struct {
	ChainID  string
	Address  string
	Basename string
}

type ChainOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StatusOutput struct {
	CurrentChainID    *int64      `json:"currentChainId,omitempty"`
	IsCorrectNetwork  bool        `json:"isCorrectNetwork"`
	ShouldShowWarning bool        `json:"shouldShowWarning"`
	Instructions      string      `json:"instructions"`
	TargetChain       ChainOutput `json:"targetChain"`
	IsMainnet         bool        `json:"isMainnet"`
	Label             string      `json:"label"`
	DisplayName       string      `json:"displayName"`
}
