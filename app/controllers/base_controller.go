package controllers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/ashidesu/Foodie-business/app/mailer"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/ashidesu/Foodie-business/app/storage"
	"github.com/ashidesu/Foodie-business/database/seeders"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
	"github.com/urfave/cli"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	Router    *mux.Router
	AppConfig *AppConfig
	Storage   storage.ObjectStorage
	Mailer    *mailer.Mailer
}

type AppConfig struct {
	AppName string
	AppEnv  string
	AppPort string
	AppURL  string
}

type DBConfig struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBDriver   string
}

// Bucket logis di object storage.
const (
	bucketDishes      = "dishes"
	bucketRestaurants = "restaurants"
)

var store *sessions.CookieStore

var sessionFlash = "flash-session"
var sessionUser = "user-session"
var sessionNav = "nav-session"

func initSessionStore() {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		// fallback dev; untuk production WAJIB isi SESSION_KEY di .env
		key = "dev-secret-change-me"
	}
	store = sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 hari
		HttpOnly: true,
	}
}

func (server *Server) Initialize(appConfig AppConfig, dbConfig DBConfig, storageConfig storage.Config, mailConfig mailer.Config) {
	fmt.Println("Welcome to " + appConfig.AppName)

	server.initializeDB(dbConfig)
	server.AppConfig = &appConfig
	server.initializeStorage(storageConfig)
	server.Mailer = mailer.New(mailConfig)
	initSessionStore()
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	fmt.Printf("Listening to port %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

func (server *Server) initializeDB(dbConfig DBConfig) {
	var err error
	if dbConfig.DBDriver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBHost, dbConfig.DBPort, dbConfig.DBName)
		server.DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", dbConfig.DBHost, dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBName, dbConfig.DBPort)
		server.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		panic("Failed on connecting to the database server")
	}
}

func (server *Server) initializeStorage(storageConfig storage.Config) {
	objectStorage, err := storage.New(storageConfig)
	if err != nil {
		panic("Failed on initializing object storage: " + err.Error())
	}
	server.Storage = objectStorage
}

func (server *Server) dbMigrate() {
	for _, model := range models.RegisterModels() {
		err := server.DB.Debug().AutoMigrate(model.Model)

		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Database migrated successfully.")
}

func (server *Server) InitCommands(config AppConfig, dbConfig DBConfig) {
	server.initializeDB(dbConfig)
	initSessionStore()

	cmdApp := cli.NewApp()
	cmdApp.Commands = []cli.Command{
		{
			Name: "db:migrate",
			Action: func(c *cli.Context) error {
				server.dbMigrate()
				return nil
			},
		},
		{
			Name: "db:seed",
			Action: func(c *cli.Context) error {
				err := seeders.DBSeed(server.DB)
				if err != nil {
					log.Fatal(err)
				}

				return nil
			},
		},
	}

	err := cmdApp.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func SetFlash(w http.ResponseWriter, r *http.Request, name string, value string) {
	session, err := store.Get(r, sessionFlash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session.AddFlash(value, name)
	session.Save(r, w)
}

func GetFlash(w http.ResponseWriter, r *http.Request, name string) []string {
	session, err := store.Get(r, sessionFlash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}

	fm := session.Flashes(name)
	if len(fm) == 0 {
		return nil
	}

	session.Save(r, w)
	var flashes []string
	for _, fl := range fm {
		flashes = append(flashes, fl.(string))
	}

	return flashes
}

func IsLoggedIn(r *http.Request) bool {
	if store == nil { // guard
		return false
	}
	session, _ := store.Get(r, sessionUser)
	return session.Values["id"] != nil
}

func ComparePassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func MakePassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(hashedPassword), err
}

func (server *Server) CurrentUser(w http.ResponseWriter, r *http.Request) *models.User {
	if !IsLoggedIn(r) {
		return nil
	}

	session, _ := store.Get(r, sessionUser)

	userModel := models.User{}
	user, err := userModel.FindByID(server.DB, session.Values["id"].(string))
	if err != nil {
		session.Values["id"] = nil
		session.Save(r, w)
		return nil
	}

	return user
}

// destroySession: sign out paksa, dipakai juga saat role check gagal.
func destroySession(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, sessionUser)
	session.Values["id"] = nil
	session.Save(r, w)
}

// RequireBusiness: gate semua halaman dashboard. User tanpa flag business
// langsung di-sign-out lagi, sama seperti perilaku di halaman login.
func (server *Server) RequireBusiness(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		user := server.CurrentUser(w, r)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !user.IsBusiness {
			destroySession(w, r)
			SetFlash(w, r, "error", "Access denied. Business account required.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next(w, r)
	}
}

// currentRestaurantID: restoran milik user yang sedang login.
func (server *Server) currentRestaurantID(user *models.User) (string, error) {
	if user == nil || strings.TrimSpace(user.RestaurantID) == "" {
		return "", fmt.Errorf("no restaurant associated with this user")
	}
	return user.RestaurantID, nil
}

// formatDollar: helper format harga untuk template.
func formatDollar(price interface{}) string {
	switch v := price.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", v)
	case int:
		return fmt.Sprintf("$%d.00", v)
	case int64:
		return fmt.Sprintf("$%d.00", v)
	default:
		return fmt.Sprintf("$%v", v)
	}
}

// hour12: "14:30" -> "2:30 PM", untuk tampilan jam buka.
func hour12(time24 string) string {
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return time24
	}

	var hour int
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil {
		return time24
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%s %s", hour, parts[1], ampm)
}

func dashboardRender() *render.Render {
	funcMap := template.FuncMap{
		"formatDollar": formatDollar,
		"hour12":       hour12,
		"lower":        strings.ToLower,
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"seq": func(from, to int) []int {
			if to < from {
				return []int{}
			}
			s := make([]int, 0, to-from+1)
			for i := from; i <= to; i++ {
				s = append(s, i)
			}
			return s
		},
	}

	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html", ".tmpl"},
		Funcs:      []template.FuncMap{funcMap},
	})
}
