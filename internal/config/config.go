package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Goals      Goals      `mapstructure:",squash"`
	Ingestion  Ingestion  `mapstructure:",squash"`
	SMTP       SMTP       `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Goals são as metas fixas de cada indicador por granularidade, injetadas no
// início da execução e tratadas como constantes durante o processamento
type Goals struct {
	RevenueDay  float64 `mapstructure:"goal_revenue_day"`
	RevenueYear float64 `mapstructure:"goal_revenue_year"`
	VarietyDay  float64 `mapstructure:"goal_variety_day"`
	VarietyYear float64 `mapstructure:"goal_variety_year"`
	TicketDay   float64 `mapstructure:"goal_ticket_day"`
	TicketYear  float64 `mapstructure:"goal_ticket_year"`
}

// Threshold retorna a meta configurada para a família e granularidade informadas
func (g Goals) Threshold(metric domain.Metric, period domain.Period) float64 {
	switch metric {
	case domain.MetricRevenue:
		if period == domain.PeriodYear {
			return g.RevenueYear
		}
		return g.RevenueDay
	case domain.MetricVariety:
		if period == domain.PeriodYear {
			return g.VarietyYear
		}
		return g.VarietyDay
	case domain.MetricAverageTicket:
		if period == domain.PeriodYear {
			return g.TicketYear
		}
		return g.TicketDay
	}

	return 0
}

// Ingestion aponta os arquivos de entrada lidos pela camada de ingestão
type Ingestion struct {
	SalesFile    string `mapstructure:"ingestion_sales_file"`
	StoresFile   string `mapstructure:"ingestion_stores_file"`
	ContactsFile string `mapstructure:"ingestion_contacts_file"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     string `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_username"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
	Enabled  bool   `mapstructure:"smtp_enabled"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	SyncEnabled  bool   `mapstructure:"report_sync_enabled"`
	BackupDir    string `mapstructure:"report_backup_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/indicators")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Metas dos indicadores
	viper.SetDefault("GOAL_REVENUE_DAY", 1000.0)
	viper.SetDefault("GOAL_REVENUE_YEAR", 1650000.0)
	viper.SetDefault("GOAL_VARIETY_DAY", 4.0)
	viper.SetDefault("GOAL_VARIETY_YEAR", 120.0)
	viper.SetDefault("GOAL_TICKET_DAY", 500.0)
	viper.SetDefault("GOAL_TICKET_YEAR", 500.0)

	// Arquivos de entrada
	viper.SetDefault("INGESTION_SALES_FILE", "Bases de Dados/Vendas.xlsx")
	viper.SetDefault("INGESTION_STORES_FILE", "Bases de Dados/Lojas.csv")
	viper.SetDefault("INGESTION_CONTACTS_FILE", "Bases de Dados/Emails.xlsx")

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("SMTP_ENABLED", false) // ONLY LOCAL

	viper.SetDefault("REPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_BACKUP_DIR", "Backup Arquivos Lojas")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
