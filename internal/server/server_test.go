package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
	authmw "github.com/TambakLabs/mujairAuth/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// ---- fakes ----

type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[string]mujairAuth.Account
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*mujairAuth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Email == email {
			found := account
			return &found, nil
		}
	}
	return nil, mujairAuth.ErrAccountNotFound
}

func (f *fakeAccounts) GetByUsername(ctx context.Context, username string) (*mujairAuth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Username == username {
			found := account
			return &found, nil
		}
	}
	return nil, mujairAuth.ErrAccountNotFound
}

func (f *fakeAccounts) Create(ctx context.Context, account *mujairAuth.Account) (*mujairAuth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.accounts == nil {
		f.accounts = make(map[string]mujairAuth.Account)
	}
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return nil, mujairAuth.ErrDuplicateEmail
		}
		if existing.Username == account.Username {
			return nil, mujairAuth.ErrUsernameTaken
		}
	}
	created := *account
	created.ID = fmt.Sprintf("a%d", len(f.accounts)+1)
	now := time.Now()
	created.CreatedAt = now
	created.UpdatedAt = now
	f.accounts[created.ID] = created
	return &created, nil
}

func (f *fakeAccounts) UpdatePasswordHash(ctx context.Context, accountID, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok {
		return mujairAuth.ErrAccountNotFound
	}
	account.PasswordHash = newHash
	f.accounts[accountID] = account
	return nil
}

type fakePending struct {
	mu   sync.Mutex
	rows map[string]mujairAuth.PendingRegistration
}

func (f *fakePending) GetByEmail(ctx context.Context, email string) (*mujairAuth.PendingRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[email]
	if !ok {
		return nil, mujairAuth.ErrPendingNotFound
	}
	found := row
	return &found, nil
}

func (f *fakePending) Upsert(ctx context.Context, pending *mujairAuth.PendingRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = make(map[string]mujairAuth.PendingRegistration)
	}
	f.rows[pending.Email] = *pending
	return nil
}

func (f *fakePending) Delete(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, email)
	return nil
}

func (f *fakePending) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (f *fakePending) has(email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[email]
	return ok
}

type fakeMail struct {
	mu              sync.Mutex
	verification    map[string]string
	reset           map[string]string
	verificationErr error
}

func (f *fakeMail) SendVerification(ctx context.Context, email, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verificationErr != nil {
		return f.verificationErr
	}
	if f.verification == nil {
		f.verification = make(map[string]string)
	}
	f.verification[email] = token
	return nil
}

func (f *fakeMail) SendPasswordReset(ctx context.Context, email, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reset == nil {
		f.reset = make(map[string]string)
	}
	f.reset[email] = token
	return nil
}

func (f *fakeMail) verificationToken(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verification[email]
}

func (f *fakeMail) resetToken(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reset[email]
}

// ---- helpers ----

type webFixture struct {
	srv      *Server
	engine   *mujairAuth.Engine
	accounts *fakeAccounts
	pending  *fakePending
	mail     *fakeMail
}

func newWebFixture(t *testing.T) *webFixture {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := mujairAuth.DefaultConfig()
	cfg.Token.Secret = []byte("0123456789abcdef0123456789abcdef")

	accounts := &fakeAccounts{}
	pending := &fakePending{}
	mail := &fakeMail{}

	engine, err := mujairAuth.New().
		WithConfig(cfg).
		WithRedis(client).
		WithAccountStore(accounts).
		WithPendingStore(pending).
		WithMailer(mail).
		Build()
	require.NoError(t, err)

	return &webFixture{
		srv:      NewServer(engine, zap.NewNop()),
		engine:   engine,
		accounts: accounts,
		pending:  pending,
		mail:     mail,
	}
}

func (f *webFixture) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func (f *webFixture) postForm(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

// flashOf decodes the flash cookie set on a response. gin query-escapes
// cookie values on the way out.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) (category, message string) {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name != middleware.FlashCookie || c.MaxAge < 0 {
			continue
		}
		decoded, err := url.QueryUnescape(c.Value)
		require.NoError(t, err)
		category, message, _ = strings.Cut(decoded, "|")
		return category, message
	}
	return "", ""
}

func sessionCookieOf(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == authmw.SessionCookie {
			decoded, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			c.Value = decoded
			return c
		}
	}
	return nil
}

// registerAccount drives the full signup flow and returns the account's
// credentials.
func (f *webFixture) registerAccount(t *testing.T, email, username, pass string, role mujairAuth.Role) {
	t.Helper()

	rec := f.postForm(t, "/register", url.Values{
		"email": {email},
		"role":  {string(role)},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	token := f.mail.verificationToken(email)
	require.NotEmpty(t, token)

	rec = f.postForm(t, "/verify/"+token, url.Values{
		"username":         {username},
		"password":         {pass},
		"confirm_password": {pass},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

// login drives the login form and returns the session cookie.
func (f *webFixture) login(t *testing.T, username, pass string) *http.Cookie {
	t.Helper()

	rec := f.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {pass},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	cookie := sessionCookieOf(t, rec)
	require.NotNil(t, cookie)
	return cookie
}

// ---- routes ----

func TestPing(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Geboy Mujair")
	assert.Contains(t, rec.Body.String(), "Pilih Role Anda")
	assert.Contains(t, rec.Body.String(), "/register?role=cashier")
}

func TestRegisterFormPreselectsRole(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/register?role=accountant")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="accountant" selected`)
}

func TestRegisterFormIgnoresUnknownRole(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/register?role=admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "selected")
}

// ---- registration ----

func TestRegisterSendsVerificationMail(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/register", url.Values{
		"email": {"budi@example.com"},
		"role":  {"cashier"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "success", category)
	assert.Equal(t, "Email verifikasi telah dikirim! Cek inbox Anda.", message)

	assert.NotEmpty(t, f.mail.verificationToken("budi@example.com"))
	assert.True(t, f.pending.has("budi@example.com"))
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/register", url.Values{
		"email": {"not-an-email"},
		"role":  {"cashier"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "error", category)
	assert.Equal(t, "Email tidak valid!", message)
}

func TestRegisterRejectsBadRole(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/register", url.Values{
		"email": {"budi@example.com"},
		"role":  {"admin"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "Role tidak valid!", message)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)

	rec := f.postForm(t, "/register", url.Values{
		"email": {"budi@example.com"},
		"role":  {"owner"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Email sudah terdaftar!", message)
}

func TestRegisterMailerFailure(t *testing.T) {
	f := newWebFixture(t)
	f.mail.verificationErr = fmt.Errorf("smtp connect refused")

	rec := f.postForm(t, "/register", url.Values{
		"email": {"budi@example.com"},
		"role":  {"cashier"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "Gagal mengirim email: smtp connect refused", message)
}

// ---- verification ----

func TestVerifyPageShowsAccountForm(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"staff"}})

	token := f.mail.verificationToken("budi@example.com")
	require.NotEmpty(t, token)

	rec := f.get(t, "/verify/"+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buat Akun")
	assert.Contains(t, rec.Body.String(), "Email Anda telah diverifikasi!")
	assert.Contains(t, rec.Body.String(), "8-20 karakter")
}

func TestVerifyPageRejectsGarbageToken(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/verify/not-a-token")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Link verifikasi tidak valid!", message)
}

func TestVerifyPageWithoutPendingRow(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"staff"}})

	token := f.mail.verificationToken("budi@example.com")
	require.NoError(t, f.pending.Delete(context.Background(), "budi@example.com"))

	rec := f.get(t, "/verify/"+token)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Data pendaftaran tidak ditemukan!", message)
}

func TestConfirmRegistrationCreatesAccount(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"accountant"}})

	token := f.mail.verificationToken("budi@example.com")
	rec := f.postForm(t, "/verify/"+token, url.Values{
		"username":         {"budi"},
		"password":         {"Rahasia1!"},
		"confirm_password": {"Rahasia1!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "success", category)
	assert.Equal(t, "Registrasi berhasil! Silakan login.", message)

	account, err := f.accounts.GetByUsername(context.Background(), "budi")
	require.NoError(t, err)
	assert.Equal(t, mujairAuth.RoleAccountant, account.Role)
	assert.False(t, f.pending.has("budi@example.com"))
}

func TestConfirmRegistrationPasswordMismatch(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"cashier"}})

	token := f.mail.verificationToken("budi@example.com")
	rec := f.postForm(t, "/verify/"+token, url.Values{
		"username":         {"budi"},
		"password":         {"Rahasia1!"},
		"confirm_password": {"Berbeda9?"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/verify/"+token, rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Password tidak cocok!", message)
	assert.True(t, f.pending.has("budi@example.com"), "failed submit must keep the pending row")
}

func TestConfirmRegistrationWeakPassword(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"cashier"}})

	token := f.mail.verificationToken("budi@example.com")
	rec := f.postForm(t, "/verify/"+token, url.Values{
		"username":         {"budi"},
		"password":         {"abc"},
		"confirm_password": {"abc"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "password must be 8-20 characters", message)

	_, err := f.accounts.GetByUsername(context.Background(), "budi")
	assert.ErrorIs(t, err, mujairAuth.ErrAccountNotFound)
	assert.True(t, f.pending.has("budi@example.com"))
}

func TestConfirmRegistrationShortUsername(t *testing.T) {
	f := newWebFixture(t)
	f.postForm(t, "/register", url.Values{"email": {"budi@example.com"}, "role": {"cashier"}})

	token := f.mail.verificationToken("budi@example.com")
	rec := f.postForm(t, "/verify/"+token, url.Values{
		"username":         {"bu"},
		"password":         {"Rahasia1!"},
		"confirm_password": {"Rahasia1!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "Username minimal 3 karakter!", message)
}

func TestConfirmRegistrationUsernameTaken(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)
	f.postForm(t, "/register", url.Values{"email": {"siti@example.com"}, "role": {"owner"}})

	token := f.mail.verificationToken("siti@example.com")
	rec := f.postForm(t, "/verify/"+token, url.Values{
		"username":         {"budi"},
		"password":         {"Rahasia1!"},
		"confirm_password": {"Rahasia1!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "Username sudah digunakan!", message)
}

// ---- login / logout ----

func TestLoginRoutesToRoleDashboard(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "owner@example.com", "ibu-owner", "Rahasia1!", mujairAuth.RoleOwner)

	rec := f.postForm(t, "/login", url.Values{
		"username": {"ibu-owner"},
		"password": {"Rahasia1!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/owner", rec.Header().Get("Location"))

	cookie := sessionCookieOf(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	sess, err := f.engine.Validate(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "ibu-owner", sess.Username)
	assert.Equal(t, "owner", sess.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)

	rec := f.postForm(t, "/login", url.Values{
		"username": {"budi"},
		"password": {"Salah123!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Username atau password salah!", message)
	assert.Nil(t, sessionCookieOf(t, rec))
}

func TestLoginUnknownUsername(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/login", url.Values{
		"username": {"hantu"},
		"password": {"Rahasia1!"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	_, message := flashOf(t, rec)
	assert.Equal(t, "Username atau password salah!", message)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)
	cookie := f.login(t, "budi", "Rahasia1!")

	rec := f.get(t, "/logout", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "success", category)
	assert.Equal(t, "Anda telah logout!", message)

	_, err := f.engine.Validate(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, mujairAuth.ErrSessionInvalid)
}

// ---- dashboards ----

func TestDashboardRequiresLogin(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/dashboard/owner")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Silakan login terlebih dahulu!", message)
}

func TestDashboardRejectsOtherRole(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "kasir@example.com", "kasir", "Rahasia1!", mujairAuth.RoleCashier)
	cookie := f.login(t, "kasir", "Rahasia1!")

	rec := f.get(t, "/dashboard/owner", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboardRendersRoleContent(t *testing.T) {
	f := newWebFixture(t)

	pages := map[mujairAuth.Role]string{
		mujairAuth.RoleCashier:    "Dashboard Kasir",
		mujairAuth.RoleAccountant: "Dashboard Akuntan",
		mujairAuth.RoleOwner:      "Dashboard Owner",
		mujairAuth.RoleStaff:      "Dashboard Karyawan",
	}

	for role, title := range pages {
		email := string(role) + "@example.com"
		username := "user-" + string(role)
		f.registerAccount(t, email, username, "Rahasia1!", role)
		cookie := f.login(t, username, "Rahasia1!")

		rec := f.get(t, "/dashboard/"+string(role), cookie)
		assert.Equal(t, http.StatusOK, rec.Code, "dashboard for %s", role)
		assert.Contains(t, rec.Body.String(), title)
		assert.Contains(t, rec.Body.String(), "Selamat datang, "+username+"!")
	}
}

// ---- password reset ----

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/forgot-password", url.Values{"email": {"hantu@example.com"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/forgot-password", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Email tidak terdaftar!", message)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)

	rec := f.postForm(t, "/forgot-password", url.Values{"email": {"budi@example.com"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "success", category)
	assert.Equal(t, "Link reset password telah dikirim ke email Anda!", message)
	assert.NotEmpty(t, f.mail.resetToken("budi@example.com"))
}

func TestResetPasswordPageRejectsGarbageToken(t *testing.T) {
	f := newWebFixture(t)

	rec := f.get(t, "/reset-password/not-a-token")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/forgot-password", rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Link reset password tidak valid!", message)
}

func TestResetPasswordSwapsCredential(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)
	f.postForm(t, "/forgot-password", url.Values{"email": {"budi@example.com"}})

	token := f.mail.resetToken("budi@example.com")
	require.NotEmpty(t, token)

	rec := f.get(t, "/reset-password/"+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password Baru")

	rec = f.postForm(t, "/reset-password/"+token, url.Values{
		"password":         {"BaruLagi2@"},
		"confirm_password": {"BaruLagi2@"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	category, message := flashOf(t, rec)
	assert.Equal(t, "success", category)
	assert.Equal(t, "Password berhasil direset! Silakan login.", message)

	// Old credential is dead, the new one logs in.
	recOld := f.postForm(t, "/login", url.Values{"username": {"budi"}, "password": {"Rahasia1!"}})
	assert.Equal(t, "/login", recOld.Header().Get("Location"))

	f.login(t, "budi", "BaruLagi2@")
}

func TestResetPasswordKillsExistingSessions(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)
	cookie := f.login(t, "budi", "Rahasia1!")

	f.postForm(t, "/forgot-password", url.Values{"email": {"budi@example.com"}})
	token := f.mail.resetToken("budi@example.com")

	rec := f.postForm(t, "/reset-password/"+token, url.Values{
		"password":         {"BaruLagi2@"},
		"confirm_password": {"BaruLagi2@"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	_, err := f.engine.Validate(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, mujairAuth.ErrSessionInvalid)
}

func TestResetPasswordMismatch(t *testing.T) {
	f := newWebFixture(t)
	f.registerAccount(t, "budi@example.com", "budi", "Rahasia1!", mujairAuth.RoleCashier)
	f.postForm(t, "/forgot-password", url.Values{"email": {"budi@example.com"}})

	token := f.mail.resetToken("budi@example.com")
	rec := f.postForm(t, "/reset-password/"+token, url.Values{
		"password":         {"BaruLagi2@"},
		"confirm_password": {"Berbeda9?"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/reset-password/"+token, rec.Header().Get("Location"))

	_, message := flashOf(t, rec)
	assert.Equal(t, "Password tidak cocok!", message)

	// Original credential still works.
	f.login(t, "budi", "Rahasia1!")
}

// ---- flash rendering ----

func TestFlashRendersOnceThenClears(t *testing.T) {
	f := newWebFixture(t)

	rec := f.postForm(t, "/register", url.Values{
		"email": {"not-an-email"},
		"role":  {"cashier"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	var flashCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.FlashCookie {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie)

	rec = f.get(t, "/register", flashCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email tidak valid!")
	assert.Contains(t, rec.Body.String(), `alert-error`)

	// The render clears the cookie.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.FlashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
