package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/haleworth/riskintel/internal/common"
	"github.com/haleworth/riskintel/internal/services/auth"
	"github.com/haleworth/riskintel/internal/services/mcp"
)

// MCPHandler handles MCP protocol requests over HTTP
type MCPHandler struct {
	service *mcp.ToolService
	auth    *auth.Service
	logger  arbor.ILogger
}

// NewMCPHandler creates a new MCP handler
func NewMCPHandler(service *mcp.ToolService, authService *auth.Service, logger arbor.ILogger) *MCPHandler {
	return &MCPHandler{
		service: service,
		auth:    authService,
		logger:  logger,
	}
}

// HandleRPC handles JSON-RPC 2.0 requests
func (h *MCPHandler) HandleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, nil, mcp.InvalidRequest, "Method must be POST", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.sendError(w, nil, mcp.ParseError, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req mcp.JSONRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.sendError(w, nil, mcp.ParseError, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.JSONRPC != "2.0" {
		h.sendError(w, req.ID, mcp.InvalidRequest, "Invalid JSON-RPC version", http.StatusBadRequest)
		return
	}

	h.logger.Debug().Str("method", req.Method).Msg("MCP RPC request")

	switch req.Method {
	case "tools/list":
		result, err := h.service.ListTools(r.Context())
		if err != nil {
			h.sendError(w, req.ID, mcp.InternalError, err.Error(), http.StatusInternalServerError)
			return
		}
		h.sendSuccess(w, req.ID, result)
	case "tools/call":
		h.handleCallTool(w, r, req)
	case "resources/list":
		result, err := h.service.ListResources(r.Context())
		if err != nil {
			h.sendError(w, req.ID, mcp.InternalError, err.Error(), http.StatusInternalServerError)
			return
		}
		h.sendSuccess(w, req.ID, result)
	case "resources/read":
		h.handleReadResource(w, r, req)
	default:
		h.sendError(w, req.ID, mcp.MethodNotFound, fmt.Sprintf("Unknown method: %s", req.Method), http.StatusNotFound)
	}
}

// handleCallTool handles tools/call requests. Tool calls carry the agent
// credential in the same header the REST surface uses.
func (h *MCPHandler) handleCallTool(w http.ResponseWriter, r *http.Request, req mcp.JSONRPCRequest) {
	agentKey := AgentKey(r)
	if err := h.auth.ValidateAgentKey(agentKey); err != nil {
		h.sendError(w, req.ID, mcp.InvalidRequest, "Invalid or missing agent key", http.StatusUnauthorized)
		return
	}

	name, ok := req.Params["name"].(string)
	if !ok || name == "" {
		h.sendError(w, req.ID, mcp.InvalidParams, "Tool name is required", http.StatusBadRequest)
		return
	}

	args, _ := req.Params["arguments"].(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := h.service.CallTool(r.Context(), name, args, agentKey)
	if err != nil {
		h.sendError(w, req.ID, mcp.MethodNotFound, err.Error(), http.StatusNotFound)
		return
	}

	h.sendSuccess(w, req.ID, result)
}

// handleReadResource handles resources/read requests
func (h *MCPHandler) handleReadResource(w http.ResponseWriter, r *http.Request, req mcp.JSONRPCRequest) {
	uri, ok := req.Params["uri"].(string)
	if !ok || uri == "" {
		h.sendError(w, req.ID, mcp.InvalidParams, "Resource URI is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.ReadResource(r.Context(), uri)
	if err != nil {
		h.sendError(w, req.ID, mcp.InvalidParams, err.Error(), http.StatusBadRequest)
		return
	}

	h.sendSuccess(w, req.ID, result)
}

// InfoHandler serves GET /mcp/info
func (h *MCPHandler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	tools, err := h.service.ListTools(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":     "riskintel",
		"version":  common.GetVersion(),
		"protocol": "jsonrpc-2.0",
		"tools":    len(tools.Tools),
	})
}

func (h *MCPHandler) sendSuccess(w http.ResponseWriter, id interface{}, result interface{}) {
	WriteJSON(w, http.StatusOK, mcp.JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (h *MCPHandler) sendError(w http.ResponseWriter, id interface{}, code int, message string, httpStatus int) {
	WriteJSON(w, httpStatus, mcp.JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &mcp.RPCError{
			Code:    code,
			Message: message,
		},
	})
}
