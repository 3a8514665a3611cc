package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/studiozen/yogabook/internal/apiclient"
	"github.com/studiozen/yogabook/internal/apitest"
	"github.com/studiozen/yogabook/internal/config"
	"github.com/studiozen/yogabook/internal/logger"
	"github.com/studiozen/yogabook/internal/model"
	"github.com/studiozen/yogabook/internal/session"
	"github.com/studiozen/yogabook/internal/validator"
	"github.com/studiozen/yogabook/internal/viewmodel"
	"golang.org/x/term"
)

// cliPresenter implements viewmodel.Navigator and viewmodel.Notifier on
// the terminal.
type cliPresenter struct{}

func (cliPresenter) Navigate(path string)  { fmt.Printf("→ %s\n", path) }
func (cliPresenter) Back()                 { fmt.Println("→ back") }
func (cliPresenter) Notify(message string) { fmt.Println(message) }

func main() {
	demo := flag.Bool("demo", false, "run against an in-process fake API with seeded data")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	baseURL := cfg.BaseURL
	if *demo {
		fake := apitest.NewServer(cfg, log)
		fake.SeedUser("yoga@studio.com", "Admin", "Admin", "test!1234", true)
		fake.SeedTeacher("Margot", "DELAHAYE")
		fake.SeedTeacher("Hélène", "THIERCELIN")
		fake.SeedSession(&model.SessionRequest{
			Name:        "Morning flow",
			Date:        "2026-09-01",
			TeacherID:   1,
			Description: "A gentle flow to start the day",
		})
		ts := httptest.NewServer(fake.Handler())
		defer ts.Close()
		baseURL = ts.URL + "/api"
		fmt.Printf("Demo mode: fake API at %s (admin: yoga@studio.com / test!1234)\n", baseURL)
	}

	store := session.NewStore()
	client := apiclient.New(baseURL, cfg.HTTPTimeout, store, log)
	presenter := cliPresenter{}

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	if err := authenticate(ctx, reader, client, store, presenter); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	runLoop(ctx, reader, client, store, presenter)
}

// authenticate offers login or register until a login succeeds.
func authenticate(ctx context.Context, reader *bufio.Reader, client *apiclient.Client, store *session.Store, presenter cliPresenter) error {
	loginVM := viewmodel.NewLoginViewModel(client.Auth(), store, presenter)
	registerVM := viewmodel.NewRegisterViewModel(client.Auth(), presenter)

	for {
		choice := prompt(reader, "(l)ogin or (r)egister: ")
		switch choice {
		case "r", "register":
			req := &model.RegisterRequest{
				Email:     prompt(reader, "Email: "),
				FirstName: prompt(reader, "First name: "),
				LastName:  prompt(reader, "Last name: "),
				Password:  promptPassword(),
			}
			if err := registerVM.Submit(ctx, req); err != nil {
				fmt.Println("Register failed:", err)
				continue
			}
			fmt.Println("Registered. Please log in.")
		case "l", "login", "":
			email := prompt(reader, "Email: ")
			password := promptPassword()
			if err := loginVM.Submit(ctx, email, password); err != nil {
				fmt.Println("Login failed:", err)
				continue
			}
			info, _ := store.Information()
			fmt.Printf("Logged in as %s (admin: %v)\n", info.Username, info.Admin)
			return nil
		default:
			fmt.Println("Unknown choice")
		}
	}
}

func runLoop(ctx context.Context, reader *bufio.Reader, client *apiclient.Client, store *session.Store, presenter cliPresenter) {
	fmt.Println("Commands: list, detail <id>, create, edit <id>, delete <id>, join <id>, leave <id>, me, delete-account, quit")

	for {
		line := prompt(reader, "> ")
		cmd, arg, _ := strings.Cut(line, " ")

		var err error
		switch cmd {
		case "list":
			err = showList(ctx, client, store)
		case "detail":
			err = withID(arg, func(id int64) error { return showDetail(ctx, client, store, presenter, id) })
		case "create":
			err = submitForm(ctx, reader, viewmodel.NewCreateForm(client.Sessions(), client.Teachers(), store, presenter, presenter))
		case "edit":
			err = withID(arg, func(id int64) error {
				return submitForm(ctx, reader, viewmodel.NewUpdateForm(client.Sessions(), client.Teachers(), store, presenter, presenter, id))
			})
		case "delete":
			err = withID(arg, func(id int64) error { return detailAction(ctx, client, store, presenter, id, actionDelete) })
		case "join":
			err = withID(arg, func(id int64) error { return detailAction(ctx, client, store, presenter, id, actionJoin) })
		case "leave":
			err = withID(arg, func(id int64) error { return detailAction(ctx, client, store, presenter, id, actionLeave) })
		case "me":
			err = showProfile(ctx, client, store, presenter)
		case "delete-account":
			err = deleteAccount(ctx, reader, client, store, presenter)
			if err == nil && !store.IsLogged() {
				return
			}
		case "quit", "exit", "q":
			return
		case "":
			continue
		default:
			fmt.Println("Unknown command:", cmd)
			continue
		}

		if err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func withID(arg string, fn func(id int64) error) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return fmt.Errorf("expected a numeric session id")
	}
	return fn(id)
}

func showList(ctx context.Context, client *apiclient.Client, store *session.Store) error {
	vm := viewmodel.NewListViewModel(client.Sessions(), store)
	if err := vm.Load(ctx); err != nil {
		return err
	}
	for _, s := range vm.Sessions() {
		fmt.Printf("  #%d  %-24s %s  (%d participant(s))\n", s.ID, s.Name, s.Date, len(s.Users))
	}
	if vm.IsAdmin() {
		fmt.Println("  [admin] create / edit available")
	}
	return nil
}

func showDetail(ctx context.Context, client *apiclient.Client, store *session.Store, presenter cliPresenter, id int64) error {
	vm := viewmodel.NewDetailViewModel(client.Sessions(), client.Teachers(), store, presenter, presenter, id)
	if err := vm.Load(ctx); err != nil {
		return err
	}
	s, t := vm.Session(), vm.Teacher()
	fmt.Printf("  %s — %s\n", s.Name, s.Date)
	fmt.Printf("  Teacher: %s %s\n", t.FirstName, strings.ToUpper(t.LastName))
	fmt.Printf("  %d participant(s)\n", len(s.Users))
	fmt.Printf("  %s\n", s.Description)
	if vm.CanParticipate() {
		fmt.Println("  You may join this session")
	}
	if vm.CanUnParticipate() {
		fmt.Println("  You are participating")
	}
	return nil
}

type detailActionKind int

const (
	actionDelete detailActionKind = iota
	actionJoin
	actionLeave
)

func detailAction(ctx context.Context, client *apiclient.Client, store *session.Store, presenter cliPresenter, id int64, kind detailActionKind) error {
	vm := viewmodel.NewDetailViewModel(client.Sessions(), client.Teachers(), store, presenter, presenter, id)
	if err := vm.Load(ctx); err != nil {
		return err
	}
	switch kind {
	case actionDelete:
		return vm.Delete(ctx)
	case actionJoin:
		return vm.Participate(ctx)
	case actionLeave:
		return vm.UnParticipate(ctx)
	}
	return nil
}

func submitForm(ctx context.Context, reader *bufio.Reader, vm *viewmodel.FormViewModel) error {
	if err := vm.Init(ctx); err != nil {
		return err
	}

	fmt.Println("Teachers:")
	for _, t := range vm.Teachers() {
		fmt.Printf("  #%d %s %s\n", t.ID, t.FirstName, t.LastName)
	}

	current := vm.Form()
	form := model.SessionRequest{
		Name:        promptDefault(reader, "Name", current.Name),
		Date:        promptDefault(reader, "Date (YYYY-MM-DD)", current.Date),
		Description: promptDefault(reader, "Description", current.Description),
	}
	teacherStr := promptDefault(reader, "Teacher id", strconv.FormatInt(current.TeacherID, 10))
	teacherID, err := strconv.ParseInt(teacherStr, 10, 64)
	if err != nil {
		return fmt.Errorf("teacher id must be a number")
	}
	form.TeacherID = teacherID

	if fields := vm.Validate(&form); fields != nil {
		for field, msg := range fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return fmt.Errorf("form is invalid")
	}
	return vm.Submit(ctx, &form)
}

func showProfile(ctx context.Context, client *apiclient.Client, store *session.Store, presenter cliPresenter) error {
	vm := viewmodel.NewMeViewModel(client.Users(), store, presenter, presenter)
	if err := vm.Load(ctx); err != nil {
		return err
	}
	fmt.Println("  Name:", vm.FullName())
	fmt.Println("  Email:", vm.User().Email)
	if vm.IsAdmin() {
		fmt.Println("  You are admin")
	}
	fmt.Println("  Create at:", vm.CreatedAtDisplay())
	fmt.Println("  Last update:", vm.UpdatedAtDisplay())
	return nil
}

func deleteAccount(ctx context.Context, reader *bufio.Reader, client *apiclient.Client, store *session.Store, presenter cliPresenter) error {
	vm := viewmodel.NewMeViewModel(client.Users(), store, presenter, presenter)
	if err := vm.Load(ctx); err != nil {
		return err
	}
	if !vm.CanDelete() {
		return fmt.Errorf("admins cannot delete their own account here")
	}
	if prompt(reader, "Type 'yes' to delete your account permanently: ") != "yes" {
		fmt.Println("Aborted")
		return nil
	}
	return vm.Delete(ctx)
}

// ─── Input helpers ─────────────────────────────────────────────────────

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptDefault(reader *bufio.Reader, label, def string) string {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	value := prompt(reader, label+": ")
	if value == "" {
		return def
	}
	return value
}

func promptPassword() string {
	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Newline after password input
	if err != nil {
		return ""
	}
	return string(bytePassword)
}
