package types

// Registry is the ordered set of configured templates
type Registry []TemplateEntry

// FindByID returns the first entry whose id equals id
func (r Registry) FindByID(id string) (*TemplateEntry, bool) {
	for i := range r {
		if r[i].ID == id {
			return &r[i], true
		}
	}
	return nil, false
}

// IDs returns the template ids in declaration order
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for _, t := range r {
		ids = append(ids, t.ID)
	}
	return ids
}

// GitSourced returns the git-backed entries, preserving order
func (r Registry) GitSourced() Registry {
	var git Registry
	for _, t := range r {
		if t.IsGit() {
			git = append(git, t)
		}
	}
	return git
}

// DuplicateID returns the first id declared more than once
func (r Registry) DuplicateID() (string, bool) {
	seen := make(map[string]struct{}, len(r))
	for _, t := range r {
		if _, ok := seen[t.ID]; ok {
			return t.ID, true
		}
		seen[t.ID] = struct{}{}
	}
	return "", false
}
