package httpapi

import (
	"net/http"

	"github.com/haushalt/ledger/internal/ledger"
)

func (s *Server) postCategory(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := s.st.AddCategory(ledger.Category{Name: req.Name, Type: req.Type, Color: req.Color})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toCategoryResponse(c))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := s.st.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	c, err := s.st.Category(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (s *Server) putCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c := ledger.Category{ID: id, Name: req.Name, Type: req.Type, Color: req.Color}
	if err := s.st.UpdateCategory(c); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteCategory(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
