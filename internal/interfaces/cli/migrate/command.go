package migrate

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sitelog/internal/domain/user"
	"sitelog/internal/infrastructure/auth"
	"sitelog/internal/infrastructure/config"
	"sitelog/internal/infrastructure/database"
	"sitelog/internal/infrastructure/persistence/models"
	"sitelog/internal/infrastructure/repository"
	"sitelog/internal/shared/authorization"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type adminInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8"`
}

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema and bootstrap accounts.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newCreateAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		Long:  `Create or update every application table to match the current model definitions.`,
		RunE:  runUp,
	}
}

func newCreateAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  `Interactively create an administrator account for a fresh installation.`,
		RunE:  runCreateAdmin,
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	logger.Info("applying database schema", "environment", env)

	err := database.Get().AutoMigrate(
		&models.UserModel{},
		&models.InterventionModel{},
		&models.AuditLogModel{},
		&models.PredefinedValueModel{},
		&models.IntervenantModel{},
		&models.CompanyModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("database schema is up to date")
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("First name: ")
	firstName, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	fmt.Print("Last name: ")
	lastName, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	input := adminInput{
		Email:     email,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Password:  string(password),
	}
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(string(password))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(email, hash, strings.TrimSpace(firstName), strings.TrimSpace(lastName), authorization.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to build admin account: %w", err)
	}

	userRepo := repository.NewUserRepository(database.Get())
	if err := userRepo.Save(context.Background(), admin); err != nil {
		return fmt.Errorf("failed to save admin account: %w", err)
	}

	logger.Info("administrator account created", "email", email)
	return nil
}
