// Command example demonstrates passwordvalidation with an HTTP signup
// endpoint and the generated OpenAPI schema for the password policy.
//
// Run:
//
//	go run ./_example
//
// Then:
//
//	curl -X POST localhost:8080/signup -d '{"password":"pass"}'
//	curl localhost:8080/schema.json
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/passwordvalidation"
)

// SignupRequest is a sample request type.
type SignupRequest struct {
	Password string `json:"password"`
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func main() {
	validator := v.NewBuilder().
		MinLength(v.DefaultMinLength).
		RequireUppercase().
		RequireDigit().
		RequireSpecialCharacter().
		NoWhitespace().
		AddRule(v.Example("Hunter-Two-9!")).
		Build()

	http.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := validator.Validate(req.Password)
		w.Header().Set("Content-Type", "application/json")
		if !result.IsValid() {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Errors: result.Descriptions()})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Serve the password policy as an OpenAPI schema so clients can render
	// the requirements without hardcoding them.
	http.HandleFunc("/schema.json", func(w http.ResponseWriter, _ *http.Request) {
		schema, err := validator.Schema()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		b, err := schema.MarshalJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
