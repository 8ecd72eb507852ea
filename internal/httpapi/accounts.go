package httpapi

import "net/http"

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := s.st.AddAccount(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toAccountResponse(a))
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := s.st.Accounts()
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	a, err := s.st.Account(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(a))
}

func (s *Server) putAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a := req.toDomain()
	a.ID = id
	if err := s.st.UpdateAccount(a); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toAccountResponse(a))
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteAccount(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
