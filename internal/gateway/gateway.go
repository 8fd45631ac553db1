// Package gateway is the HTTP client for the upstream hospital API. One
// method per (resource, verb) pair, exactly one attempt per call: no
// retries, no backoff. Success bodies are decoded into the expected shape
// verbatim, with no schema validation.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Alijeyrad/hospital_backend/config"
	"github.com/Alijeyrad/hospital_backend/internal/hospital"
)

// Client talks to the hospital API rooted at cfg.BaseURL.
type Client struct {
	http *resty.Client
}

// New creates a Client. A TimeoutSeconds of 0 leaves the client without a
// timeout; callers cancel through the context if they need a bound.
func New(cfg config.UpstreamConfig) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.TimeoutSeconds > 0 {
		c.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &Client{http: c}
}

func (c *Client) ListPatients(ctx context.Context) ([]hospital.Patient, error) {
	var out []hospital.Patient
	if err := c.get(ctx, "/patients", "failed to fetch patients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePatient(ctx context.Context, req hospital.NewPatient) (*hospital.Patient, error) {
	var out hospital.Patient
	if err := c.send(ctx, resty.MethodPost, "/patients", req, "failed to add patient", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePatient(ctx context.Context, p hospital.Patient) (*hospital.Patient, error) {
	var out hospital.Patient
	path := fmt.Sprintf("/patients/%s", p.ID)
	if err := c.send(ctx, resty.MethodPut, path, p, "failed to update patient", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchPatients(ctx context.Context, query string) ([]hospital.Patient, error) {
	var out []hospital.Patient
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get("/patients/search")
	if err != nil {
		return nil, &RequestError{Message: "failed to search patients", Err: err}
	}
	if resp.IsError() {
		return nil, &RequestError{Message: "failed to search patients", Status: resp.StatusCode()}
	}
	return out, nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]hospital.Doctor, error) {
	var out []hospital.Doctor
	if err := c.get(ctx, "/doctors", "failed to fetch doctors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAppointments(ctx context.Context) ([]hospital.Appointment, error) {
	var out []hospital.Appointment
	if err := c.get(ctx, "/appointments", "failed to fetch appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req hospital.NewAppointment) (*hospital.Appointment, error) {
	var out hospital.Appointment
	if err := c.send(ctx, resty.MethodPost, "/appointments", req, "failed to schedule appointment", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, a hospital.Appointment) (*hospital.Appointment, error) {
	var out hospital.Appointment
	path := fmt.Sprintf("/appointments/%s", a.ID)
	if err := c.send(ctx, resty.MethodPut, path, a, "failed to update appointment", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAppointment only confirms the request succeeded; the response body
// is ignored and the store flips the status locally.
func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	path := fmt.Sprintf("/appointments/%s/cancel", id)
	return c.send(ctx, resty.MethodPut, path, nil, "failed to cancel appointment", nil)
}

func (c *Client) ListBills(ctx context.Context) ([]hospital.Bill, error) {
	var out []hospital.Bill
	if err := c.get(ctx, "/bills", "failed to fetch bills", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBill(ctx context.Context, req hospital.NewBill) (*hospital.Bill, error) {
	var out hospital.Bill
	if err := c.send(ctx, resty.MethodPost, "/bills", req, "failed to create bill", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBillStatus ignores the response body like CancelAppointment does.
func (c *Client) UpdateBillStatus(ctx context.Context, id string, status hospital.BillStatus) error {
	path := fmt.Sprintf("/bills/%s/status", id)
	body := map[string]any{"status": status}
	return c.send(ctx, resty.MethodPut, path, body, "failed to update bill status", nil)
}

func (c *Client) ListInventory(ctx context.Context) ([]hospital.InventoryItem, error) {
	var out []hospital.InventoryItem
	if err := c.get(ctx, "/inventory", "failed to fetch inventory", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, failMsg string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return &RequestError{Message: failMsg, Err: err}
	}
	if resp.IsError() {
		return &RequestError{Message: failMsg, Status: resp.StatusCode()}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any, failMsg string, out any) error {
	r := c.http.R().SetContext(ctx)
	if body != nil {
		r.SetBody(body)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Execute(method, path)
	if err != nil {
		return &RequestError{Message: failMsg, Err: err}
	}
	if resp.IsError() {
		return &RequestError{Message: failMsg, Status: resp.StatusCode()}
	}
	return nil
}
