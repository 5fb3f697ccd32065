package agent

import (
	"context"
	"fmt"

	"github.com/ngaspar/salesboard"
	"github.com/ngaspar/salesboard/date"
	"github.com/ngaspar/salesboard/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Dataset is the loaded data the experts answer from. The cmd layer loads it
// once and shares it across experts.
type Dataset struct {
	Config       salesboard.Config
	Transactions []salesboard.Transaction
	Receivable   []salesboard.LedgerEntry
	Payable      []salesboard.LedgerEntry
	Calendar     *date.Calendar
	Opening      salesboard.Money
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a sales operation: he is here primarily for figures about revenue,
			goals, customer concentration and cash. Every figure must come from an expert,
			never from your own arithmetic.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketWatcher returns the expert grounding answers in web search.
func NewMarketWatcher() *Expert {
	return &Expert{
		Name: "MarketWatcher",
		Description: `This is an expert on the Brazilian market,
		aware of the economic news, exchange rates and sector trends.
		Ask the MarketWatcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in the Brazilian market. You can search and find anything related to
			the economy, sectors, companies and exchange rates. You leverage Google Search to
			ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst returns the sales analyst expert. It owns the revenue side of
// the books: channel totals, goal ladders and customer concentration.
func NewAnalyst(data *Dataset) *Expert {
	lib := []Function{
		salesSummaryFunc(data),
		goalStatusFunc(data),
		concentrationFunc(data),
	}
	return &Expert{
		Name: "Analyst",
		Description: `This is the sales Analyst. He reads the transaction table and computes
		channel totals, goal attainment and customer concentration for any period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a sales analyst in charge of the user's transaction table.
				You are part of a team of experts; yours is everything about realized revenue.
				Use the available tools to compute channel totals, goal attainment and
				customer concentration. Never compute a figure yourself.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewTreasurer returns the cash expert. It owns the receivable and payable
// ledgers.
func NewTreasurer(data *Dataset) *Expert {
	lib := []Function{cashFlowFunc(data)}
	return &Expert{
		Name: "Treasurer",
		Description: `This is the Treasurer. He reconciles the receivable and payable ledgers
		into daily cash projections and knows when the balance runs low.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the treasurer in charge of the user's cash position.
				Use the available tools to project the cash balance over any period.
				Never compute a figure yourself.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

var rangeSchema = map[string]*genai.Schema{
	"from": {
		Type:        genai.TypeString,
		Description: "First day of the period, YYYY-MM-DD.",
	},
	"to": {
		Type:        genai.TypeString,
		Description: "Last day of the period, YYYY-MM-DD. Defaults to the current month when both bounds are omitted.",
	},
}

func salesSummaryFunc(data *Dataset) Function {
	const name = "SalesSummary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `SalesSummary totals the period's revenue per sales channel,
			plus the daily table and the salesperson table.`,
			Parameters: &genai.Schema{Type: genai.TypeObject, Properties: rangeSchema},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with the channel totals, daily sales and salesperson tables.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rng, err := parseRange(args)
			if err != nil {
				return errResponse(id, name, err)
			}
			f := data.Config.Filter()
			f.Range = rng
			txs := f.Filter(data.Transactions)
			channels := data.Config.ChannelSet()
			summary := salesboard.NewSalesSummary(txs, channels, rng)
			daily := salesboard.NewDailySalesTable(txs, channels)
			people := salesboard.NewSalespersonTable(txs, channels)
			return okResponse(id, name, renderer.SalesMarkdown(summary, daily, people))
		},
	}
}

func goalStatusFunc(data *Dataset) Function {
	const name = "GoalStatus"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `GoalStatus evaluates a category's goal ladder for one month:
			realized revenue, the projected month-end total and the state of every tier.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "The goal category, usually a channel name like OPD.",
					},
					"month": {
						Type:        genai.TypeString,
						Description: "The month, YYYY-MM. Defaults to the current month.",
					},
				},
				Required: []string{"category"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the goal attainment.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			category, _ := args["category"].(string)
			month := date.Today()
			if s, ok := args["month"].(string); ok && s != "" {
				parsed, err := date.Parse(s + "-01")
				if err != nil {
					return errResponse(id, name, fmt.Errorf("argument 'month' must be YYYY-MM, got %q", s))
				}
				month = parsed
			}
			report, err := goalReport(data, category, month)
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.GoalMarkdown(report))
		},
	}
}

func concentrationFunc(data *Dataset) Function {
	const name = "Concentration"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Concentration ranks the period's customers by revenue and
			partitions them into ABC classes by cumulative share.`,
			Parameters: &genai.Schema{Type: genai.TypeObject, Properties: rangeSchema},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the customer concentration.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rng, err := parseRange(args)
			if err != nil {
				return errResponse(id, name, err)
			}
			f := data.Config.Filter()
			f.Range = rng
			txs := f.Filter(data.Transactions)
			report := salesboard.NewConcentrationReport(salesboard.EntityTotals(txs))
			return okResponse(id, name, renderer.ConcentrationMarkdown(report))
		},
	}
}

func cashFlowFunc(data *Dataset) Function {
	const name = "CashFlow"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `CashFlow reconciles the receivable and payable ledgers into a
			daily balance projection over the period, with the lowest balance and its date.`,
			Parameters: &genai.Schema{Type: genai.TypeObject, Properties: rangeSchema},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the daily cash projection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rng, err := parseRange(args)
			if err != nil {
				return errResponse(id, name, err)
			}
			report, err := salesboard.NewCashFlowReport(data.Receivable, data.Payable, data.Opening, rng)
			if err != nil {
				return errResponse(id, name, err)
			}
			return okResponse(id, name, renderer.CashFlowMarkdown(report))
		},
	}
}

// goalReport wires the calendar, the filtered month and the configured
// ladder into a goal evaluation as of today.
func goalReport(data *Dataset, category string, month date.Date) (*salesboard.GoalReport, error) {
	tiers, err := data.Config.TiersFor(category, month.Month())
	if err != nil {
		return nil, err
	}

	rng := date.MonthOf(month)
	f := data.Config.Filter()
	f.Range = rng
	txs := f.Filter(data.Transactions)
	realized := salesboard.NewSalesSummary(txs, data.Config.ChannelSet(), rng).ChannelTotal(category)

	today := date.Today()
	elapsed := data.Calendar.BusinessDaysElapsed(month.Month(), today, true)
	remaining := data.Calendar.BusinessDaysRemaining(month.Month(), today, false)
	return salesboard.NewGoalReport(category, month.Month(), realized, tiers, elapsed, remaining, salesboard.SequentialWaterfall)
}

func parseRange(args map[string]any) (date.Range, error) {
	from, _ := args["from"].(string)
	to, _ := args["to"].(string)
	if from == "" && to == "" {
		return date.MonthOf(date.Today()), nil
	}
	f, err := date.Parse(from)
	if err != nil {
		return date.Range{}, fmt.Errorf("argument 'from': %w", err)
	}
	t, err := date.Parse(to)
	if err != nil {
		return date.Range{}, fmt.Errorf("argument 'to': %w", err)
	}
	return date.Range{From: f, To: t}, nil
}
