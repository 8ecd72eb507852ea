package httpapi

import "net/http"

func (s *Server) postInvestment(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req investmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inv, err := s.st.AddInvestment(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toInvestmentResponse(inv))
}

func (s *Server) listInvestments(w http.ResponseWriter, r *http.Request) {
	invs := s.st.Investments()
	out := make([]investmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvestmentResponse(inv))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	inv, err := s.st.Investment(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (s *Server) putInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req investmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	inv := req.toDomain()
	inv.ID = id
	if err := s.st.UpdateInvestment(inv); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (s *Server) deleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteInvestment(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
