package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	grpcAdapter "github.com/quentinrf/berlin-clock/internal/adapters/grpc"
	"github.com/quentinrf/berlin-clock/internal/domain"
	"github.com/quentinrf/berlin-clock/pkg/tlsconfig"
)

func newRemoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote [HH:mm:ss]",
		Short: "Render a time through a berlin clock server",
		Example: "  berlinclock remote 13:17:01 --addr localhost:50051\n" +
			"  berlinclock remote --now",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, _ := cmd.Flags().GetBool("now")
			if now == (len(args) == 1) {
				return fmt.Errorf("give either a time or --now")
			}

			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			conn, err := dial(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client := grpcAdapter.NewClient(conn)
			if now {
				current, err := client.GetCurrentClock(ctx)
				if err != nil {
					return err
				}
				log.Debug().Str("time", current.Time).Msg("received current clock")
				face, err := domain.ParseClock(current.Lamps)
				if err != nil {
					return err
				}
				return printer.PrintLabeled(current.Time, face)
			}

			lamps, err := client.Convert(ctx, args[0])
			if err != nil {
				return err
			}
			return printer.PrintGrid(lamps)
		},
	}

	cmd.Flags().String("addr", "localhost:50051", "server address")
	cmd.Flags().Bool("now", false, "render the server's current time")
	cmd.Flags().Duration("timeout", 5*time.Second, "request timeout")
	cmd.Flags().String("tls-cert", "", "client certificate for mTLS")
	cmd.Flags().String("tls-key", "", "client private key for mTLS")
	cmd.Flags().String("tls-ca", "", "CA certificate that signed the server certificate")
	cmd.Flags().String("server-name", "", "name to verify the server certificate against")
	return cmd
}

func dial(cmd *cobra.Command) (*grpc.ClientConn, error) {
	addr, _ := cmd.Flags().GetString("addr")
	files := tlsconfig.Files{}
	files.Cert, _ = cmd.Flags().GetString("tls-cert")
	files.Key, _ = cmd.Flags().GetString("tls-key")
	files.CA, _ = cmd.Flags().GetString("tls-ca")

	creds := insecure.NewCredentials()
	if files.Enabled() {
		serverName, _ := cmd.Flags().GetString("server-name")
		tlsCfg, err := tlsconfig.LoadClientTLS(files, serverName)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS config: %w", err)
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	log.Debug().Str("addr", addr).Bool("tls", files.Enabled()).Msg("connected to server")
	return conn, nil
}
