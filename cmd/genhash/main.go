// genhash imprime el hash bcrypt de una contraseña, listo para pegar en la
// columna password_hash de usuarios. Útil para resetear cuentas de demo sin
// pasar por el flujo de registro.
//
//	go run ./cmd/genhash            # contraseña de demo por defecto
//	go run ./cmd/genhash otraClave
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := "awa2026"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	// Mismo costo que usa el registro de cuentas.
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}
