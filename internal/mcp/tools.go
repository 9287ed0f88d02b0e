package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listFeaturesTool = mcp.NewTool("list_features",
	mcp.WithDescription("List the MCP features and transports tracked by the compatibility matrix."),
)

var listCombinationsTool = mcp.NewTool("list_combinations",
	mcp.WithDescription("List every valid developer interface + AI client combination."),
	mcp.WithString("ide",
		mcp.Description("Only list combinations for this interface ID (e.g. vscode)"),
	),
)

var getSupportTool = mcp.NewTool("get_support",
	mcp.WithDescription("Get how well one AI client inside one developer interface supports an MCP feature or transport."),
	mcp.WithString("feature",
		mcp.Required(),
		mcp.Description("Feature or transport ID (e.g. tools, sampling, stdio)"),
	),
	mcp.WithString("ide",
		mcp.Required(),
		mcp.Description("Developer interface ID (e.g. vscode)"),
	),
	mcp.WithString("client",
		mcp.Required(),
		mcp.Description("AI client ID, or \"native\" for the built-in assistant"),
	),
	mcp.WithString("kind",
		mcp.Description("Set to \"feature\" or \"transport\" when a feature and a transport share the ID"),
	),
)

var getEvidenceTool = mcp.NewTool("get_evidence",
	mcp.WithDescription("Get the recorded evidence and source for one cell of the feature matrix."),
	mcp.WithString("feature",
		mcp.Required(),
		mcp.Description("Feature or transport ID"),
	),
	mcp.WithString("combo",
		mcp.Required(),
		mcp.Description("Combination key in the form <ide>+<client> (e.g. vscode+copilot)"),
	),
	mcp.WithString("kind",
		mcp.Description("Set to \"feature\" or \"transport\" when a feature and a transport share the ID"),
	),
)

var getChangelogTool = mcp.NewTool("get_changelog",
	mcp.WithDescription("Get the most recent changelog entries, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of entries to return (default 10)"),
	),
)
