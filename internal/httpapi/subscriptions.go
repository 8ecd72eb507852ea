package httpapi

import "net/http"

func (s *Server) postSubscription(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req subscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sub, err := s.st.AddSubscription(req.toDomain())
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusCreated, toSubscriptionResponse(sub))
}

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs := s.st.Subscriptions()
	out := make([]subscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubscriptionResponse(sub))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	sub, err := s.st.Subscription(id)
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

func (s *Server) putSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req subscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sub := req.toDomain()
	sub.ID = id
	if err := s.st.UpdateSubscription(sub); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	toJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

func (s *Server) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	if err := s.st.DeleteSubscription(id); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
