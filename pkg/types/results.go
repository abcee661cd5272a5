package types

// NewProjectResult is returned by the new command
type NewProjectResult struct {
	TemplateID string `json:"template" yaml:"template"`

	// Path is the created project directory
	Path string `json:"path" yaml:"path"`

	// MarkerFile is the file whose placeholders were substituted
	MarkerFile string `json:"markerFile,omitempty" yaml:"markerFile,omitempty"`

	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Author   string `json:"author" yaml:"author"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// TemplateSyncStatus is the outcome of synchronizing one git template
type TemplateSyncStatus struct {
	ID         string `json:"id" yaml:"id"`
	Repository string `json:"repository" yaml:"repository"`
	Path       string `json:"path" yaml:"path"`

	// Action is one of "cloned", "updated" or "up-to-date"
	Action string `json:"action" yaml:"action"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// SyncTemplatesResult is returned by the templates sync command
type SyncTemplatesResult struct {
	Templates []TemplateSyncStatus `json:"templates" yaml:"templates"`
}

// ValidateTemplatesResult is returned by the templates validate command
type ValidateTemplatesResult struct {
	// Validated holds the ids that passed, in declaration order
	Validated []string `json:"validated" yaml:"validated"`
}

// TemplateInfo describes one configured template
type TemplateInfo struct {
	ID   string       `json:"id" yaml:"id"`
	Mode SourcingMode `json:"mode" yaml:"mode"`

	// Repository and PathPrefix are set for git templates only
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`
	PathPrefix string `json:"pathPrefix,omitempty" yaml:"pathPrefix,omitempty"`

	// Path is the content directory the template resolves to
	Path string `json:"path" yaml:"path"`

	// Installed reports whether Path currently exists
	Installed bool `json:"installed" yaml:"installed"`
}

// ListTemplatesResult is returned by the templates list command
type ListTemplatesResult struct {
	Templates []TemplateInfo `json:"templates" yaml:"templates"`
}

// PurgeResult is returned by the templates purge command
type PurgeResult struct {
	// Path is the cloned templates root
	Path string `json:"path" yaml:"path"`

	// Removed is false when there was nothing to remove
	Removed bool `json:"removed" yaml:"removed"`
}
