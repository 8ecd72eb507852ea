package httpapi

import "net/http"

func (s *Server) postDebt(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req debtRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := s.st.AddDebt(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toDebtResponse(d))
}

func (s *Server) listDebts(w http.ResponseWriter, r *http.Request) {
	debts := s.st.Debts()
	out := make([]debtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, toDebtResponse(d))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	d, err := s.st.Debt(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toDebtResponse(d))
}

func (s *Server) putDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req debtRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d := req.toDomain()
	d.ID = id
	if err := s.st.UpdateDebt(d); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toDebtResponse(d))
}

func (s *Server) deleteDebt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteDebt(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
