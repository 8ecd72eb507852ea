package httpapi

import (
	"net/http"

	"github.com/haushalt/ledger/internal/ledger"
)

func (s *Server) postPerson(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req personRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.st.AddPerson(ledger.Person{Name: req.Name})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toPersonResponse(p))
}

func (s *Server) listPersons(w http.ResponseWriter, r *http.Request) {
	persons := s.st.Persons()
	out := make([]personResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	p, err := s.st.Person(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toPersonResponse(p))
}

func (s *Server) putPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req personRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p := ledger.Person{ID: id, Name: req.Name}
	if err := s.st.UpdatePerson(p); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toPersonResponse(p))
}

func (s *Server) deletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeletePerson(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
