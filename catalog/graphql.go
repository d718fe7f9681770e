package catalog

import (
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Identity of the GraphQL passthrough tool.
const (
	Namespace          = "shopify"
	ExecuteGraphQLName = "shopify_execute_graphql"
	ExecuteGraphQLID   = Namespace + ":" + ExecuteGraphQLName
)

// ExecuteGraphQL describes the single passthrough tool.
func ExecuteGraphQL() Entry {
	return Entry{
		Tool: model.Tool{
			Tool: mcp.Tool{
				Name:        ExecuteGraphQLName,
				Description: executeSummary,
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{
							"type":        "string",
							"description": "The complete GraphQL query or mutation to execute.",
						},
						"variables": map[string]any{
							"type":                 "object",
							"description":          "Optional variables for the query. Keys must match the variable names declared in the query, with matching types.",
							"additionalProperties": true,
						},
					},
					"required": []any{"query"},
				},
				Annotations: &mcp.ToolAnnotations{
					Title:           Title(ExecuteGraphQLName),
					DestructiveHint: boolPtr(true),
					OpenWorldHint:   boolPtr(true),
				},
			},
			Namespace: Namespace,
			Tags:      []string{"shopify", "graphql", "admin-api", "commerce"},
		},
		Doc: tooldoc.DocEntry{
			Summary:  executeSummary,
			Notes:    executeNotes,
			Examples: executeExamples,
		},
	}
}

func boolPtr(b bool) *bool { return &b }

const executeSummary = "Query store data or perform store management operations through the Shopify Admin GraphQL API."

const executeNotes = `Executes arbitrary GraphQL queries and mutations with the Shopify Admin API, with access to every operation the access token's scopes permit. Retrieve products, manage inventory, process orders, or update store content. Before using this tool, run an introspection query to learn the schema of the object types and fields you need.

The result is a JSON string holding the complete Shopify response, including "data" and "errors" when present.

Response parsing: Shopify returns paginated data as connections. Extract nodes from "edges" (products = data.products.edges[*].node). To paginate, request pageInfo { hasNextPage endCursor } and pass endCursor as the "after" argument of the next request.

Error handling:
- Check the "errors" array in the response.
- For mutations, check the "userErrors" field for validation issues.
- Invalid GraphQL syntax: verify the query structure.
- Unknown fields: check field names through introspection.
- Missing required fields: include every required field.
- Permission issues: verify the token has the needed access scopes.
- Rate limits: Shopify enforces query cost limits; retry later when throttled.`

var executeExamples = []tooldoc.ToolExample{
	{
		ID:          "fetch-products",
		Title:       "Fetching products",
		Description: "List the first five products.",
		Args: map[string]any{
			"query": "query GetProducts {\n  products(first: 5) {\n    edges {\n      node {\n        id\n        title\n        description\n      }\n    }\n  }\n}",
		},
	},
	{
		ID:          "fetch-orders",
		Title:       "Fetching orders",
		Description: "List the first five orders with their totals.",
		Args: map[string]any{
			"query": "query GetOrders {\n  orders(first: 5) {\n    edges {\n      node {\n        id\n        name\n        totalPriceSet {\n          shopMoney {\n            amount\n            currencyCode\n          }\n        }\n      }\n    }\n  }\n}",
		},
	},
	{
		ID:          "create-product",
		Title:       "Creating a product",
		Description: "Create a product and read back any validation errors.",
		Args: map[string]any{
			"query": "mutation CreateProduct($input: ProductInput!) {\n  productCreate(input: $input) {\n    product {\n      id\n      title\n    }\n    userErrors {\n      field\n      message\n    }\n  }\n}",
			"variables": map[string]any{
				"input": map[string]any{"title": "New Product", "productType": "Accessories"},
			},
		},
		ResultHint: "Inspect data.productCreate.userErrors before trusting data.productCreate.product.",
	},
	{
		ID:          "paginate-products",
		Title:       "Paginating with a cursor",
		Description: "Fetch the next page using endCursor from the previous response.",
		Args: map[string]any{
			"query": "query GetMoreProducts($cursor: String!) {\n  products(first: 5, after: $cursor) {\n    pageInfo {\n      hasNextPage\n      endCursor\n    }\n    edges {\n      node {\n        id\n        title\n      }\n    }\n  }\n}",
			"variables": map[string]any{"cursor": "endCursorFromPreviousRequest"},
		},
	},
	{
		ID:          "introspect-type",
		Title:       "Schema introspection",
		Description: "Discover the fields of a type.",
		Args: map[string]any{
			"query": "query TypeQuery($name: String!) {\n  __type(name: $name) {\n    name\n    description\n    fields {\n      name\n      description\n    }\n  }\n}",
			"variables": map[string]any{"name": "Product"},
		},
	},
}
