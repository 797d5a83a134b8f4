// Package wcmeta models the component metadata manifest emitted by the
// web-component compiler: one descriptor per custom element, listing its
// properties, events and methods. Descriptors are read-only input; the
// compiler owns their shape.
package wcmeta

// Component describes one compiled custom element.
type Component struct {
	Tag               string            `json:"tag"`
	ClassName         string            `json:"componentClassName"`
	SourceFilePath    string            `json:"sourceFilePath"`
	Properties        []Property        `json:"properties"`
	VirtualProperties []VirtualProperty `json:"virtualProperties"`
	Events            []Event           `json:"events"`
	Methods           []Method          `json:"methods"`
}

// Property is a reflected member of the element. Internal members are kept
// out of the public API and never generate bindings.
type Property struct {
	Name     string `json:"name"`
	Internal bool   `json:"internal"`
}

// VirtualProperty is declared in the component's docs only; it still counts
// as an input on the generated wrapper.
type VirtualProperty struct {
	Name string `json:"name"`
}

// Event carries the DOM event name plus the name of the method on the
// component's own generated interface that types its payload.
type Event struct {
	Name     string `json:"event"`
	Method   string `json:"method"`
	Internal bool   `json:"internal"`
	Docs     Docs   `json:"docs"`
}

type Docs struct {
	Text string   `json:"text"`
	Tags []DocTag `json:"tags"`
}

type DocTag struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type Method struct {
	Name     string `json:"name"`
	Internal bool   `json:"internal"`
}
