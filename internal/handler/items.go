package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/itemforge/internal/definition"
)

// ItemResponse is the inspection view of one loaded item definition.
type ItemResponse struct {
	InternalName string   `json:"internal_name"`
	PublicName   string   `json:"public_name"`
	Description  string   `json:"description,omitempty"`
	MaxStack     int      `json:"max_stack"`
	WearMax      int      `json:"wear_max"`
	Mechanics    []string `json:"mechanics"`
}

// ItemListResponse wraps the item list
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

func itemResponse(store *definition.Store, def definition.Def) ItemResponse {
	return ItemResponse{
		InternalName: def.InternalName,
		PublicName:   def.PublicName,
		Description:  def.Description,
		MaxStack:     def.MaxStack,
		WearMax:      def.WearMax,
		Mechanics:    store.MechanicTypes(def.InternalName),
	}
}

// HandleListItems lists all loaded item definitions with their bound mechanics
func HandleListItems(store *definition.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := store.Items()
		items := make([]ItemResponse, 0, len(defs))
		for _, def := range defs {
			items = append(items, itemResponse(store, def))
		}
		respondJSON(w, http.StatusOK, ItemListResponse{Items: items})
	}
}

// HandleGetItem returns one item definition by internal name
func HandleGetItem(store *definition.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		def, ok := store.Def(name)
		if !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Item '%s' not found", name))
			return
		}
		respondJSON(w, http.StatusOK, itemResponse(store, def))
	}
}

// MechanicsResponse lists the mechanic types bound to one item
type MechanicsResponse struct {
	InternalName string   `json:"internal_name"`
	Mechanics    []string `json:"mechanics"`
}

// HandleGetItemMechanics returns the mechanic types bound to an item
func HandleGetItemMechanics(store *definition.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		if _, ok := store.Def(name); !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf("Item '%s' not found", name))
			return
		}
		respondJSON(w, http.StatusOK, MechanicsResponse{
			InternalName: name,
			Mechanics:    store.MechanicTypes(name),
		})
	}
}
