package handlers

import "net/http"

type styleEntry struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (a *App) StylesList(w http.ResponseWriter, r *http.Request) {
	names := a.Catalog.Names()
	entries := make([]styleEntry, 0, len(names))
	for _, name := range names {
		tpl, _ := a.Catalog.Lookup(name)
		entries = append(entries, styleEntry{
			Name:        string(name),
			Label:       tpl.Label,
			Description: tpl.Description,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"styles": entries})
}
