package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"apnidisha/internal/ivr"
	"apnidisha/internal/service"
)

// VoiceHandler handles the Twilio voice webhooks and the outbound trigger.
type VoiceHandler struct {
	controller *ivr.Controller
	callSvc    *service.CallService
}

// NewVoiceHandler creates a new voice handler.
func NewVoiceHandler(controller *ivr.Controller, callSvc *service.CallService) *VoiceHandler {
	return &VoiceHandler{
		controller: controller,
		callSvc:    callSvc,
	}
}

// Start handles POST /api/voice/start — Twilio hits this when the call
// connects.
func (h *VoiceHandler) Start(w http.ResponseWriter, r *http.Request) {
	callSID := r.FormValue("CallSid")
	resp := h.controller.StartCall(r.Context(), callSID)
	writeTwiML(w, resp)
}

// Turn handles POST /api/voice/question — Twilio posts here after every
// keypress (or gather timeout).
func (h *VoiceHandler) Turn(w http.ResponseWriter, r *http.Request) {
	callSID := r.FormValue("CallSid")
	digits := r.FormValue("Digits")
	resp := h.controller.HandleTurn(r.Context(), callSID, digits)
	writeTwiML(w, resp)
}

// TriggerCallRequest is the body for POST /api/voice/trigger-call.
type TriggerCallRequest struct {
	Phone string `json:"phone"`
}

// TriggerCall handles POST /api/voice/trigger-call — places an outbound
// quiz call.
func (h *VoiceHandler) TriggerCall(w http.ResponseWriter, r *http.Request) {
	var req TriggerCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "missing 'phone' in request body")
		return
	}

	callSID, err := h.callSvc.PlaceCall(r.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrCallNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "call placed",
		"callSid": callSID,
	})
}

// writeTwiML answers a webhook. The phone call has no error channel, so a
// render failure still produces an empty, valid TwiML document.
func writeTwiML(w http.ResponseWriter, resp *ivr.Response) {
	body, err := resp.Render()
	if err != nil {
		log.Printf("twiml render failed: %v", err)
		empty := &ivr.Response{}
		body, _ = empty.Render()
	}
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
