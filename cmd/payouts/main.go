// Command payouts prints the pending seller reimbursements and can settle one
// seller or write their statement from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/config"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	queryFlag     = flag.String("q", "", "Only list sellers whose name or id contains this text")
	settleFlag    = flag.String("settle", "", "Mark every sold game of this seller id as paid")
	statementFlag = flag.String("statement", "", "Write the PDF statement of this seller id")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	api := infra.NewDepotClient(infra.DefaultBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second)
	vm := service.NewPayoutViewModel(repository.NewGameRepository(api))

	if err := vm.FetchSoldGames(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load sold games")
	}

	switch {
	case *settleFlag != "":
		result, err := vm.Settle(ctx, *settleFlag)
		if err != nil {
			log.Fatal().Err(err).Str("seller_id", *settleFlag).Msg("settlement failed")
		}
		if n := vm.Notice(); n != nil {
			fmt.Printf("%s : %s\n", n.Title, n.Message)
		}
		if !result.Complete() {
			os.Exit(1)
		}
	case *statementFlag != "":
		summary, ok := vm.Summary(*statementFlag)
		if !ok {
			log.Fatal().Str("seller_id", *statementFlag).Err(service.ErrSellerNotFound).Msg("no pending payout")
		}
		statements := service.NewStatementService(cfg.ShopName, cfg.PDFStoragePath, infra.NewMailer(cfg))
		path, err := statements.Render(summary)
		if err != nil {
			log.Fatal().Err(err).Msg("statement not written")
		}
		fmt.Println(path)
	default:
		printSummaries(os.Stdout, vm.Summaries(*queryFlag))
	}
}

func printSummaries(out io.Writer, summaries []model.SellerSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Vendeur\tNom\tJeux\tVentes\tCommission\tÀ rembourser\t")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t\n",
			s.SellerID, s.SellerName, len(s.Games),
			s.TotalSales.StringFixed(2), s.TotalCommission.StringFixed(2), s.TotalToRefund.StringFixed(2))
	}
	_ = w.Flush()
}
