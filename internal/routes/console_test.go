package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/infra/apiclient"
	"github.com/BruksfildServices01/lily-salon/internal/models"
	"github.com/BruksfildServices01/lily-salon/internal/session"
	"github.com/BruksfildServices01/lily-salon/internal/timezone"
	"github.com/BruksfildServices01/lily-salon/internal/web"
)

const sessionCookie = "sid"

// testConsole runs the console against the real management API behind an
// httptest server that can be told to fail specific calls.
type testConsole struct {
	t      *testing.T
	api    *testAPI
	router *gin.Engine
	store  *session.MemoryStore

	mu       sync.Mutex
	failures map[string]int
	readyErr error
}

func newTestConsole(t *testing.T) *testConsole {
	t.Helper()

	tc := &testConsole{
		t:        t,
		api:      newTestAPI(t),
		store:    session.NewMemoryStore(),
		failures: map[string]int{},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status := tc.failure(r.Method, r.URL.Path); status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error_code":"injected","message":"injected failure"}`))
			return
		}
		tc.api.router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL+"/api/management/", apiclient.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("api client: %v", err)
	}

	sessions := session.NewManager(tc.store, "test")
	h := web.New(web.Options{
		API:        client,
		Sessions:   sessions,
		Clock:      timezone.FixedClock(dto.NewDate(2026, time.October, 14)),
		Log:        zap.NewNop(),
		CookieName: sessionCookie,
	})

	tc.router = gin.New()
	RegisterConsoleRoutes(tc.router, Console{
		Handler:    h,
		Sessions:   sessions,
		CookieName: sessionCookie,
		Log:        zap.NewNop(),
		Ready: func(context.Context) error {
			tc.mu.Lock()
			defer tc.mu.Unlock()
			return tc.readyErr
		},
	})

	tc.seed()
	return tc
}

func (tc *testConsole) failOn(method, path string, status int) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.failures[method+" /api/management/"+path] = status
}

func (tc *testConsole) failure(method, path string) int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if status, ok := tc.failures[method+" "+path]; ok {
		return status
	}
	if status, ok := tc.failures["* *"]; ok && !strings.HasSuffix(path, "/login/") {
		return status
	}
	return 0
}

// seed creates two customers, two services and four appointments around
// 2026-10-14.
func (tc *testConsole) seed() {
	t := tc.t
	token := tc.api.login("manager", "manager-pass").Token

	ana := decodeJSON[dto.Customer](t, tc.api.do(http.MethodPost, "customers/", token, dto.CustomerInput{
		FirstName: "Ana", LastName: "Smith", PhoneNumber: "5551110000", Email: "ana@example.com",
	}))
	bea := decodeJSON[dto.Customer](t, tc.api.do(http.MethodPost, "customers/", token, dto.CustomerInput{
		FirstName: "Bea", LastName: "Jones", PhoneNumber: "5552220000", Email: "bea@example.com",
	}))
	cut := decodeJSON[dto.Service](t, tc.api.do(http.MethodPost, "services/", token, gin.H{
		"service_name": "Cut", "description": "Wash and cut", "price": 45, "duration": 30,
	}))
	color := decodeJSON[dto.Service](t, tc.api.do(http.MethodPost, "services/", token, gin.H{
		"service_name": "Color", "description": "Full color", "price": 80, "duration": 90,
	}))

	bookings := []gin.H{
		{"customer_id": ana.ID, "appointment_date": "2026-10-14", "appointment_time": "10:00",
			"total_price": 45, "employee_assigned": "Linda", "services": []uint{cut.ID}},
		{"customer_id": bea.ID, "appointment_date": "2026-10-16", "appointment_time": "14:00", "status": "completed",
			"total_price": 80, "employee_assigned": "Mara", "services": []uint{color.ID}},
		{"customer_id": bea.ID, "appointment_date": "2026-10-13", "appointment_time": "09:00",
			"total_price": 45, "employee_assigned": "Nina", "services": []uint{cut.ID}},
		{"customer_id": ana.ID, "appointment_date": "2026-09-20", "appointment_time": "11:00", "status": "completed",
			"total_price": 125, "employee_assigned": "Olga", "services": []uint{color.ID, cut.ID}},
	}
	for _, b := range bookings {
		if w := tc.api.do(http.MethodPost, "appointments/", token, b); w.Code != http.StatusCreated {
			t.Fatalf("seed appointment: %d %s", w.Code, w.Body.String())
		}
	}
}

func (tc *testConsole) do(method, path string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	tc.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	return w
}

func (tc *testConsole) login(username, password string) *http.Cookie {
	tc.t.Helper()

	w := tc.do(http.MethodPost, "/login", nil, url.Values{"username": {username}, "password": {password}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		tc.t.Fatalf("login %s: expected redirect to /, got %d %s", username, w.Code, w.Header().Get("Location"))
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookie && ck.Value != "" {
			return ck
		}
	}
	tc.t.Fatal("login did not set a session cookie")
	return nil
}

func (tc *testConsole) appointmentByEmployee(employee string) models.Appointment {
	tc.t.Helper()
	var ap models.Appointment
	if err := tc.api.db.Preload("AppointmentServices.Service").Where("employee_assigned = ?", employee).First(&ap).Error; err != nil {
		tc.t.Fatalf("find appointment for %s: %v", employee, err)
	}
	return ap
}

func assertContains(t *testing.T, w *httptest.ResponseRecorder, want ...string) {
	t.Helper()
	body := w.Body.String()
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("expected page to contain %q", s)
		}
	}
}

func assertNotContains(t *testing.T, w *httptest.ResponseRecorder, unwanted ...string) {
	t.Helper()
	body := w.Body.String()
	for _, s := range unwanted {
		if strings.Contains(body, s) {
			t.Errorf("expected page not to contain %q", s)
		}
	}
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("expected redirect to %s, got %s", location, got)
	}
}

// ======================================================
// SESSION
// ======================================================

func TestConsole_RequiresSession(t *testing.T) {
	tc := newTestConsole(t)

	for _, path := range []string{"/", "/appointments", "/customers", "/services", "/manager"} {
		assertRedirect(t, tc.do(http.MethodGet, path, nil, nil), "/login")
	}

	bogus := &http.Cookie{Name: sessionCookie, Value: "not-a-session"}
	assertRedirect(t, tc.do(http.MethodGet, "/", bogus, nil), "/login")
}

func TestConsole_LoginFailure(t *testing.T) {
	tc := newTestConsole(t)

	w := tc.do(http.MethodPost, "/login", nil, url.Values{"username": {"manager"}, "password": {"wrong"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	assertContains(t, w, "Invalid username or password. Please try again.", `value="manager"`)
	if tc.store.Len() != 0 {
		t.Errorf("expected no session to be stored, got %d keys", tc.store.Len())
	}

	w = tc.do(http.MethodPost, "/login", nil, url.Values{"username": {""}, "password": {""}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty form, got %d", w.Code)
	}
}

func TestConsole_LoginHomeLogout(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")

	if tc.store.Len() != 2 {
		t.Errorf("expected token and user keys, got %d", tc.store.Len())
	}

	w := tc.do(http.MethodGet, "/", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w,
		"Welcome, Lily Rose!",
		"Today's Appointments",
		"Upcoming Appointments (Next 5 Days)",
		"Linda", "Mara",
		`href="/manager"`,
	)
	// Yesterday and September are not on the home board.
	assertNotContains(t, w, "Nina", "Olga")

	assertRedirect(t, tc.do(http.MethodPost, "/logout", cookie, url.Values{}), "/login")
	if tc.store.Len() != 0 {
		t.Errorf("expected session keys to be removed, got %d", tc.store.Len())
	}
	assertRedirect(t, tc.do(http.MethodGet, "/", cookie, nil), "/login")
}

func TestConsole_StaffNavHidesManager(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	w := tc.do(http.MethodGet, "/", cookie, nil)
	assertContains(t, w, "Welcome, Sam Park!", `href="/customers"`)
	assertNotContains(t, w, `href="/manager"`)

	assertRedirect(t, tc.do(http.MethodGet, "/manager", cookie, nil), "/")
	assertRedirect(t, tc.do(http.MethodGet, "/manager/report.xlsx", cookie, nil), "/")
}

func TestConsole_RejectedTokenShowsViewError(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	tc.mu.Lock()
	tc.failures["* *"] = http.StatusUnauthorized
	tc.mu.Unlock()

	w := tc.do(http.MethodGet, "/appointments", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Failed to fetch appointments. Please try again later.")

	// The session record is only removed by logout.
	if tc.store.Len() != 2 {
		t.Errorf("expected session to be kept, got %d keys", tc.store.Len())
	}
}

// ======================================================
// APPOINTMENTS
// ======================================================

func TestConsole_AppointmentsPartition(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	w := tc.do(http.MethodGet, "/appointments", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Upcoming Appointments", "Linda", "Mara", "Nina", "Show Past Appointments",
		"Search by Customer or Employee", "All Statuses")
	assertNotContains(t, w, "Olga", "Past Appointments</h2>")

	body := w.Body.String()
	if strings.Index(body, "Nina") > strings.Index(body, "Linda") {
		t.Error("expected yesterday's appointment to be listed first")
	}

	w = tc.do(http.MethodGet, "/appointments?past=1", cookie, nil)
	assertContains(t, w, "Past Appointments</h2>", "Olga", "Hide Past Appointments")
}

func TestConsole_AppointmentsFilter(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	w := tc.do(http.MethodGet, "/appointments?q=MARA", cookie, nil)
	assertContains(t, w, "Mara", `value="MARA"`)
	assertNotContains(t, w, "Linda", "Nina")

	w = tc.do(http.MethodGet, "/appointments?q=jones&past=1", cookie, nil)
	assertContains(t, w, "Mara", "Nina")
	assertNotContains(t, w, "Linda", "Olga")

	w = tc.do(http.MethodGet, "/appointments?status=completed&past=1", cookie, nil)
	assertContains(t, w, "Mara", "Olga")
	assertNotContains(t, w, "Linda", "Nina")

	w = tc.do(http.MethodGet, "/appointments?start=2026-10-14&end=2026-10-14&past=1", cookie, nil)
	assertContains(t, w, "Linda")
	assertNotContains(t, w, "Mara", "Nina", "Olga")

	// Unparseable bounds are ignored.
	w = tc.do(http.MethodGet, "/appointments?start=tomorrow", cookie, nil)
	assertContains(t, w, "Linda", "Mara", "Nina")
}

func TestConsole_ToggleStatus(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")
	linda := tc.appointmentByEmployee("Linda")
	path := fmt.Sprintf("/appointments/%d/toggle", linda.ID)

	w := tc.do(http.MethodGet, path+"?next=/", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Are you sure you want to mark this appointment as completed?", "Mark as Completed")

	// Declining changes nothing.
	assertRedirect(t, tc.do(http.MethodPost, path, cookie, url.Values{"next": {"/"}}), "/")
	if got := tc.appointmentByEmployee("Linda"); got.Status != string(dto.StatusScheduled) {
		t.Fatalf("expected status to stay scheduled, got %s", got.Status)
	}

	w = tc.do(http.MethodPost, path, cookie, url.Values{"confirm": {"yes"}, "next": {"/"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Appointment status updated successfully!", "Today's Appointments", "Mark as Scheduled")

	got := tc.appointmentByEmployee("Linda")
	if got.Status != string(dto.StatusCompleted) {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if len(got.AppointmentServices) != 1 || got.AppointmentServices[0].Service.ServiceName != "Cut" || got.TotalPrice != 45 {
		t.Errorf("expected the rest of the appointment to survive, got %+v", got)
	}

	w = tc.do(http.MethodGet, path, cookie, nil)
	assertContains(t, w, "Are you sure you want to mark this appointment as scheduled?")

	tc.do(http.MethodPost, path, cookie, url.Values{"confirm": {"yes"}})
	if got := tc.appointmentByEmployee("Linda"); got.Status != string(dto.StatusScheduled) {
		t.Errorf("expected toggling twice to restore scheduled, got %s", got.Status)
	}
}

func TestConsole_ToggleFailure(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")
	linda := tc.appointmentByEmployee("Linda")

	tc.failOn(http.MethodPut, fmt.Sprintf("appointments/%d/", linda.ID), http.StatusInternalServerError)

	w := tc.do(http.MethodPost, fmt.Sprintf("/appointments/%d/toggle", linda.ID), cookie,
		url.Values{"confirm": {"yes"}, "next": {"/appointments"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Failed to update appointment status. Please try again.", "Linda")
	assertNotContains(t, w, "successfully")
}

func TestConsole_FetchFailure(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	tc.failOn(http.MethodGet, "appointments/", http.StatusInternalServerError)

	w := tc.do(http.MethodGet, "/appointments", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Failed to fetch appointments. Please try again later.", "No appointments found.")

	w = tc.do(http.MethodGet, "/", cookie, nil)
	assertContains(t, w, "Failed to fetch appointments. Please try again later.", "Welcome, Sam Park!")

	// Other views are unaffected.
	w = tc.do(http.MethodGet, "/customers", cookie, nil)
	assertContains(t, w, "Ana Smith")
	assertNotContains(t, w, "Failed to fetch")
}

func TestConsole_CreateAndEditAppointment(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	w := tc.do(http.MethodGet, "/appointments?new=1", cookie, nil)
	assertContains(t, w, "New Appointment", "Ana Smith", "Color ($80.00)", `value="2026-10-14"`)

	var ana models.Customer
	tc.api.db.Where("first_name = ?", "Ana").First(&ana)
	var cut models.Service
	tc.api.db.Where("service_name = ?", "Cut").First(&cut)

	form := url.Values{
		"customer_id":      {fmt.Sprint(ana.ID)},
		"appointment_date": {"2026-10-15"},
		"appointment_time": {"16:30"},
		"total_price":      {"45.00"},
		"services":         {fmt.Sprint(cut.ID)},
	}

	w = tc.do(http.MethodPost, "/appointments", cookie, form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without employee, got %d", w.Code)
	}
	assertContains(t, w, "Failed to create appointment. Please check your input and try again.", `value="16:30"`)

	form.Set("employee_assigned", "Petra")
	w = tc.do(http.MethodPost, "/appointments", cookie, form)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Appointment created successfully!", "Petra")

	petra := tc.appointmentByEmployee("Petra")
	if petra.Status != string(dto.StatusScheduled) || len(petra.AppointmentServices) != 1 {
		t.Errorf("unexpected created appointment %+v", petra)
	}

	w = tc.do(http.MethodGet, fmt.Sprintf("/appointments?edit=%d", petra.ID), cookie, nil)
	assertContains(t, w, "Edit Appointment", `value="Petra"`, `value="16:30"`)

	form.Set("employee_assigned", "Quinn")
	form.Set("status", "canceled")
	w = tc.do(http.MethodPost, fmt.Sprintf("/appointments/%d", petra.ID), cookie, form)
	assertContains(t, w, "Appointment updated successfully!", "Quinn")
	if got := tc.appointmentByEmployee("Quinn"); got.Status != string(dto.StatusCanceled) {
		t.Errorf("expected canceled, got %s", got.Status)
	}

	// The API rejects an unknown service; the form stays open.
	form.Set("services", "999")
	w = tc.do(http.MethodPost, fmt.Sprintf("/appointments/%d", petra.ID), cookie, form)
	assertContains(t, w, "Failed to update appointment. Please check your input and try again.", "Edit Appointment")
}

func TestConsole_DeleteAppointmentIsManagerOnly(t *testing.T) {
	tc := newTestConsole(t)
	staff := tc.login("staff", "staff-pass")
	manager := tc.login("manager", "manager-pass")
	olga := tc.appointmentByEmployee("Olga")
	path := fmt.Sprintf("/appointments/%d/delete", olga.ID)

	w := tc.do(http.MethodGet, "/appointments?past=1", staff, nil)
	assertNotContains(t, w, path)
	assertRedirect(t, tc.do(http.MethodPost, path, staff, url.Values{"confirm": {"yes"}}), "/")

	w = tc.do(http.MethodGet, "/appointments?past=1", manager, nil)
	assertContains(t, w, path)

	w = tc.do(http.MethodGet, path, manager, nil)
	assertContains(t, w, "Are you sure you want to delete this appointment?")

	w = tc.do(http.MethodPost, path, manager, url.Values{"confirm": {"yes"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w, "Appointment deleted successfully!")

	var count int64
	tc.api.db.Model(&models.Appointment{}).Count(&count)
	if count != 3 {
		t.Errorf("expected 3 appointments left, got %d", count)
	}
}

func TestConsole_FailedWriteAndReloadShowBothErrors(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")
	olga := tc.appointmentByEmployee("Olga")

	var ana models.Customer
	tc.api.db.Where("first_name = ?", "Ana").First(&ana)

	tc.failOn(http.MethodDelete, fmt.Sprintf("appointments/%d/", olga.ID), http.StatusInternalServerError)
	tc.failOn(http.MethodPut, fmt.Sprintf("customers/%d/", ana.ID), http.StatusInternalServerError)
	tc.failOn(http.MethodPost, "services/", http.StatusInternalServerError)
	tc.failOn(http.MethodGet, "appointments/", http.StatusInternalServerError)
	tc.failOn(http.MethodGet, "customers/", http.StatusInternalServerError)
	tc.failOn(http.MethodGet, "services/", http.StatusInternalServerError)

	w := tc.do(http.MethodPost, fmt.Sprintf("/appointments/%d/delete", olga.ID), cookie, url.Values{"confirm": {"yes"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w,
		"Failed to delete appointment. Please try again.",
		"Failed to fetch appointments. Please try again later.",
	)

	w = tc.do(http.MethodPost, fmt.Sprintf("/customers/%d", ana.ID), cookie, url.Values{
		"first_name": {"Ana"}, "last_name": {"Smith"}, "phone_number": {"5551110000"}, "email": {"ana@example.com"},
	})
	assertContains(t, w,
		"Failed to update customer. Please check your input and try again.",
		"Failed to fetch customers. Please try again later.",
	)

	w = tc.do(http.MethodPost, "/services", cookie, url.Values{
		"service_name": {"Blowout"}, "description": {"Wash and style"}, "price": {"35"}, "duration": {"40"},
	})
	assertContains(t, w,
		"Failed to create service. Please check your input and try again.",
		"Failed to fetch services. Please try again later.",
	)

	// A rejected form never reaches the API but still reports the reload.
	w = tc.do(http.MethodPost, "/appointments", cookie, url.Values{"customer_id": {""}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	assertContains(t, w,
		"Failed to create appointment. Please check your input and try again.",
		"Failed to fetch appointments. Please try again later.",
	)
}

// ======================================================
// CUSTOMERS / SERVICES
// ======================================================

func TestConsole_Customers(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("staff", "staff-pass")

	w := tc.do(http.MethodGet, "/customers?q=BEA@", cookie, nil)
	assertContains(t, w, "Bea Jones")
	assertNotContains(t, w, "Ana Smith")

	w = tc.do(http.MethodGet, "/customers?q=555111", cookie, nil)
	assertContains(t, w, "Ana Smith")
	assertNotContains(t, w, "Bea Jones")

	w = tc.do(http.MethodPost, "/customers", cookie, url.Values{
		"first_name": {"Cleo"}, "last_name": {"Park"}, "phone_number": {"5553330000"}, "email": {"cleo@example.com"},
	})
	assertContains(t, w, "Customer created successfully!", "Cleo Park", "Ana Smith")

	w = tc.do(http.MethodPost, "/customers", cookie, url.Values{
		"first_name": {"Dan"}, "last_name": {"Dup"}, "phone_number": {"5554440000"}, "email": {"cleo@example.com"},
	})
	assertContains(t, w, "Failed to create customer. Please check your input and try again.", `value="Dan"`)

	var ana models.Customer
	tc.api.db.Where("first_name = ?", "Ana").First(&ana)

	w = tc.do(http.MethodGet, fmt.Sprintf("/customers/%d/appointments", ana.ID), cookie, nil)
	assertContains(t, w, "Appointment History for Ana Smith", "Linda", "Olga")
	body := w.Body.String()
	if strings.Index(body, "Linda") > strings.Index(body, "Olga") {
		t.Error("expected the most recent appointment first")
	}

	assertRedirect(t, tc.do(http.MethodPost, fmt.Sprintf("/customers/%d/delete", ana.ID), cookie,
		url.Values{"confirm": {"yes"}}), "/")
}

func TestConsole_DeleteCustomer(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")

	var ana models.Customer
	tc.api.db.Where("first_name = ?", "Ana").First(&ana)
	path := fmt.Sprintf("/customers/%d/delete", ana.ID)

	w := tc.do(http.MethodGet, path, cookie, nil)
	assertContains(t, w, "Are you sure you want to delete this customer?")

	assertRedirect(t, tc.do(http.MethodPost, path, cookie, url.Values{"confirm": {"no"}}), "/customers")

	w = tc.do(http.MethodPost, path, cookie, url.Values{"confirm": {"yes"}})
	assertContains(t, w, "Customer deleted successfully!", "Bea Jones")
	assertNotContains(t, w, "Ana Smith")
}

func TestConsole_Services(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")

	w := tc.do(http.MethodGet, "/services", cookie, nil)
	assertContains(t, w, "Cut", "$45.00", "30 min", "Color")

	w = tc.do(http.MethodPost, "/services", cookie, url.Values{
		"service_name": {"Blowout"}, "description": {"Wash and style"}, "price": {"35"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without duration, got %d", w.Code)
	}
	assertContains(t, w, "Failed to create service. Please check your input and try again.")

	w = tc.do(http.MethodPost, "/services", cookie, url.Values{
		"service_name": {"Blowout"}, "description": {"Wash and style"}, "price": {"35"}, "duration": {"40"},
	})
	assertContains(t, w, "Service created successfully!", "Blowout", "$35.00")

	var blowout models.Service
	tc.api.db.Where("service_name = ?", "Blowout").First(&blowout)

	w = tc.do(http.MethodGet, fmt.Sprintf("/services?edit=%d", blowout.ID), cookie, nil)
	assertContains(t, w, "Edit Service", `value="35.00"`)

	w = tc.do(http.MethodPost, fmt.Sprintf("/services/%d", blowout.ID), cookie, url.Values{
		"service_name": {"Blowout"}, "description": {"Wash and style"}, "price": {"38.50"}, "duration": {"40"},
	})
	assertContains(t, w, "Service updated successfully!", "$38.50")

	w = tc.do(http.MethodPost, fmt.Sprintf("/services/%d/delete", blowout.ID), cookie, url.Values{"confirm": {"yes"}})
	assertContains(t, w, "Service deleted successfully!")
	assertNotContains(t, w, "Blowout")
}

// ======================================================
// MANAGER
// ======================================================

func TestConsole_ManagerReport(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")

	w := tc.do(http.MethodGet, "/manager", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, w,
		"Manager Dashboard",
		"Salon Performance",
		"Total Appointments This Month (October): <strong>2</strong>",
		"Total Appointments Last Month (September 2026): <strong>1</strong>",
		"Most Frequently Booked Services",
		"<td>Cut</td>\n      <td>3</td>\n      <td>2</td>\n      <td>1</td>",
		"<td>Color</td>\n      <td>2</td>\n      <td>0</td>\n      <td>1</td>",
	)

	w = tc.do(http.MethodGet, "/manager/report.xlsx", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/vnd.openxmlformats") {
		t.Errorf("unexpected content type %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "service-report-2026-10.xlsx") {
		t.Errorf("unexpected content disposition %s", cd)
	}

	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) < 3 || rows[1][0] != "Cut" || rows[1][1] != "3" || rows[2][0] != "Color" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestConsole_ManagerReportFailure(t *testing.T) {
	tc := newTestConsole(t)
	cookie := tc.login("manager", "manager-pass")

	tc.failOn(http.MethodGet, "services/", http.StatusBadGateway)

	w := tc.do(http.MethodGet, "/manager", cookie, nil)
	assertContains(t, w, "Failed to fetch service reports. Please try again later.")
	assertNotContains(t, w, "Salon Performance")
}

// ======================================================
// HEALTH
// ======================================================

func TestConsole_Health(t *testing.T) {
	tc := newTestConsole(t)

	if w := tc.do(http.MethodGet, "/health", nil, nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := tc.do(http.MethodGet, "/health/ready", nil, nil); w.Code != http.StatusOK {
		t.Errorf("expected ready, got %d", w.Code)
	}

	tc.mu.Lock()
	tc.readyErr = errors.New("redis down")
	tc.mu.Unlock()

	if w := tc.do(http.MethodGet, "/health/ready", nil, nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}
