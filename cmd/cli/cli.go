package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"okiteru-api/cmd/bootstrap"
	"okiteru-api/internal/infra/database/admin"
	"okiteru-api/internal/infra/database/migrations"
	"okiteru-api/internal/infra/database/postgres"
	"okiteru-api/internal/pkg/logger"
)

type options struct {
	Start             bool
	Stop              bool
	Seed              bool
	Update            bool
	Status            bool
	DBCheck           bool
	DBDelete          bool
	DBBackup          bool
	BackupDestination string
}

func Execute() error {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if !opts.anyOperation() {
		fmt.Println("Nenhuma operação informada. Use --help para listar as opções disponíveis.")
		return nil
	}

	if opts.Stop {
		if err := stopServer(); err != nil {
			return fmt.Errorf("falha ao parar servidor: %w", err)
		}
		fmt.Println("Servidor finalizado com sucesso.")
		return nil
	}

	bootstrap.Environment()
	if err := bootstrap.InitLogger(); err != nil {
		return fmt.Errorf("falha ao iniciar logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Use()

	var db *gorm.DB
	if opts.requiresDatabase() {
		db = postgres.InitPostgres()
		defer postgres.Close()
	}
	manager := migrations.NewManager(db)

	// update antes de seed: o seed depende das tabelas.
	if opts.Update {
		applied, err := manager.ApplyUpdate()
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de atualização: %w", err)
		}
		log.Info("Migrations de atualização aplicadas com sucesso.", zap.Strings("applied", applied))
	}

	if opts.Seed {
		applied, err := manager.ApplySeed()
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de seed: %w", err)
		}
		log.Info("Migrations de seed aplicadas com sucesso.", zap.Strings("applied", applied))
	}

	if opts.Status {
		for _, category := range []migrations.Category{migrations.Update, migrations.Seed} {
			status, err := manager.Pending(category)
			if err != nil {
				return fmt.Errorf("falha ao consultar migrations (%s): %w", category, err)
			}
			for _, s := range status {
				fmt.Printf("%-7s %-60s applied=%t\n", s.Category, s.Name, s.Applied)
			}
		}
	}

	if opts.DBCheck {
		status, err := admin.Check(db)
		if err != nil {
			return fmt.Errorf("falha ao checar banco de dados: %w", err)
		}
		log.Info("Banco de dados ativo.",
			zap.Int("tables", len(status.Tables)),
			zap.Strings("names", status.Tables),
			zap.Any("rows", status.Rows),
		)
	}

	if opts.DBDelete {
		if err := admin.DeleteAll(db); err != nil {
			return fmt.Errorf("falha ao deletar tabelas do banco: %w", err)
		}
		log.Info("Todas as tabelas foram removidas com sucesso.")
	}

	if opts.DBBackup {
		if opts.BackupDestination == "" {
			return errors.New("para executar o backup informe o destino com --local=<caminho>")
		}
		dest, err := admin.Backup(admin.BackupOptions{Destination: opts.BackupDestination})
		if err != nil {
			return fmt.Errorf("falha ao executar backup: %w", err)
		}
		log.Info("Backup gerado", zap.String("path", dest))
	}

	if opts.Start {
		if err := startServer(); err != nil {
			return fmt.Errorf("falha ao iniciar servidor: %w", err)
		}
	}

	return nil
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("okiteru", pflag.ContinueOnError)
	fs.BoolVar(&opts.Start, "start", false, "Inicia o servidor HTTP")
	fs.BoolVar(&opts.Stop, "stop", false, "Finaliza o servidor HTTP")
	fs.BoolVar(&opts.Seed, "migration-seed", false, "Aplica migrations de seed (usuários de exemplo)")
	fs.BoolVar(&opts.Update, "migration-update", false, "Aplica migrations de atualização do schema")
	fs.BoolVar(&opts.Status, "migration-status", false, "Lista migrations embutidas e se já foram aplicadas")
	fs.BoolVar(&opts.DBCheck, "db-check", false, "Checa status do banco de dados")
	fs.BoolVar(&opts.DBDelete, "db-delete", false, "Remove todas as tabelas do banco de dados")
	fs.BoolVar(&opts.DBBackup, "db-backup", false, "Realiza backup do banco de dados com pg_dump")
	fs.StringVar(&opts.BackupDestination, "local", "", "Arquivo ou diretório de destino para o backup")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.Start && opts.Stop {
		return options{}, errors.New("--start e --stop não podem ser usados juntos")
	}
	return opts, nil
}

func (o options) anyOperation() bool {
	return o.Start || o.Stop || o.Seed || o.Update || o.Status || o.DBCheck || o.DBDelete || o.DBBackup
}

func (o options) requiresDatabase() bool {
	return o.Seed || o.Update || o.Status || o.DBCheck || o.DBDelete
}
