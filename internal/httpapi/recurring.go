package httpapi

import "net/http"

func (s *Server) postRecurringEntry(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req recurringEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := s.st.AddRecurringEntry(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toRecurringEntryResponse(e))
}

func (s *Server) listRecurringEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.st.RecurringEntries()
	out := make([]recurringEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toRecurringEntryResponse(e))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getRecurringEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	e, err := s.st.RecurringEntry(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toRecurringEntryResponse(e))
}

func (s *Server) putRecurringEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req recurringEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e := req.toDomain()
	e.ID = id
	if err := s.st.UpdateRecurringEntry(e); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toRecurringEntryResponse(e))
}

// deleteRecurringEntry removes the entry together with its amount schedules.
func (s *Server) deleteRecurringEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteRecurringEntry(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postAmountSchedule(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req amountScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := s.st.AddAmountSchedule(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toAmountScheduleResponse(a))
}

func (s *Server) listAmountSchedules(w http.ResponseWriter, r *http.Request) {
	schedules := s.st.AmountSchedules()
	out := make([]amountScheduleResponse, 0, len(schedules))
	for _, a := range schedules {
		out = append(out, toAmountScheduleResponse(a))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getAmountSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	a, err := s.st.AmountSchedule(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAmountScheduleResponse(a))
}

func (s *Server) putAmountSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req amountScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a := req.toDomain()
	a.ID = id
	if err := s.st.UpdateAmountSchedule(a); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toAmountScheduleResponse(a))
}

func (s *Server) deleteAmountSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteAmountSchedule(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
