package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"tradejournal"
	"tradejournal/docs"
	"tradejournal/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the coach persona that owns the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Coach",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a trading coach reviewing a personal stock-trading journal.
			You are in charge of the conversation and of solving the user's request.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and keep the context of your previous questions.

			The user keeps a journal of buys, sells, notes and daily plans. He is
			here to understand his own results: what worked, what did not, which
			strategies pay and which habits cost money. Ground every claim about
			his performance in figures from the Analyst before commenting on it.

			Coach, don't advise: point at patterns in his own numbers, never
			recommend buying or selling a specific security.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarkets is the expert grounding answers about companies and markets
// with web search.
func NewMarkets() *Expert {
	return &Expert{
		Name: "Markets",
		Description: `An expert on financial markets and companies, aware of
		recent news. Ask Markets whenever you need recent or grounding
		information about a symbol the user traded.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on financial markets. You leverage Google Search
			to ground your assertions about companies, sectors and market moves,
			and you know how to relate recent news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst is the expert reading the user's journal in dir through
// function tools.
func NewAnalyst(dir string) *Expert {
	lib := []Function{positionsTool(dir), tradesTool(dir), statsTool(dir)}

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst reads the user's trading journal. He can list
		the open positions, the closed trades and the performance statistics.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's trading journal.
				Use the available tools to extract the relevant figures:
				  - open positions
				  - closed trades (first-in first-out matching)
				  - performance statistics, overall and per strategy
				Other experts might ask you questions in approximative language,
				figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// report computes the full journal report from the files in dir.
func report(dir string) (*tradejournal.Report, error) {
	j, err := tradejournal.LoadJournal(dir)
	if err != nil {
		return nil, err
	}
	return j.Report()
}

func positionsTool(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Positions",
			Description: `Positions lists the open positions in the journal, with average buy price, market value and unrealized P&L where a price is known.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the open positions.",
			},
		},
		Run: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			r, err := report(dir)
			if err != nil {
				return failure(id, "Positions", err)
			}
			return success(id, "Positions", renderer.Positions(r.Positions))
		},
	}
}

func tradesTool(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Trades",
			Description: `Trades lists the closed trades, first-in first-out matched,
			with realized P&L per trade. An optional 'from' date keeps only trades
			closed on or after it.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": {
						Type: genai.TypeString,
						Description: `Keep only trades closed on or after this date.
						The format is flexible, based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the closed trades.",
			},
		},
		Run: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := report(dir)
			if err != nil {
				return failure(id, "Trades", err)
			}
			trades := r.Trades
			if raw, ok := args["from"]; ok {
				s, ok := raw.(string)
				if !ok {
					return failure(id, "Trades", fmt.Errorf("argument 'from' is not a string but %T", raw))
				}
				from, err := tradejournal.ParseDate(s)
				if err != nil {
					return failure(id, "Trades", fmt.Errorf("argument 'from' must be a valid date, got %q: %w", s, err))
				}
				var kept []tradejournal.ClosedTrade
				for _, t := range trades {
					if !tradejournal.DateOf(t.SellTime).Before(from) {
						kept = append(kept, t)
					}
				}
				trades = kept
			}
			return success(id, "Trades", renderer.Trades(trades))
		},
	}
}

func statsTool(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Stats",
			Description: `Stats computes the performance statistics of the journal:
			realized P&L, win rate, averages, profit factor and total return,
			overall and per strategy.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the performance statistics.",
			},
		},
		Run: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			r, err := report(dir)
			if err != nil {
				return failure(id, "Stats", err)
			}
			return success(id, "Stats", renderer.Stats(r.Stats, r.Strategies))
		},
	}
}
