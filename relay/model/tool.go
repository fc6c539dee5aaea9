package model

type Tool struct {
	Id       string   `json:"id,omitempty"`
	Type     string   `json:"type,omitempty"` // empty in later fragments of a streamed tool call
	Function Function `json:"function"`
	Index    *int     `json:"index,omitempty"`
}

type Function struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"` // empty in later fragments of a streamed tool call
	Parameters  any    `json:"parameters,omitempty"`
	Arguments   string `json:"arguments,omitempty"`
	Strict      bool   `json:"strict,omitempty"`
}
