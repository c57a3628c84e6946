package dto

import "fmt"

// Mensajes de validación y de resultado que ve el usuario final.
// Se mantienen en inglés: son los textos que renderiza la UI.
const (
	MsgNameRequired            = "Name is required"
	MsgDescriptionRequired     = "Description is required"
	MsgSkuRequired             = "SKU is required"
	MsgCategoryRequired        = "Category is required"
	MsgProductRequired         = "Product is required"
	MsgQuantityRequired        = "Quantity is required"
	MsgMovementTypeRequired    = "Movement type is required"
	MsgReasonRequired          = "Reason is required"
	MsgUserNameRequired        = "Username is required"
	MsgEmailRequired           = "Email is required"
	MsgInvalidEmail            = "Invalid email address"
	MsgQuantityGreaterThanZero = "Quantity must be greater than 0"
	MsgNameMax100              = "Name must not exceed 100 characters"
	MsgNameMax150              = "Name must not exceed 150 characters"
	MsgDescriptionMax250       = "Description must not exceed 250 characters"
	MsgDescriptionMax500       = "Description must not exceed 500 characters"
	MsgSkuMax50                = "SKU must not exceed 50 characters"
	MsgPasswordRequired        = "Password is required"
	MsgPasswordMin6            = "Password must be at least 6 characters"

	MsgCategoryWithProducts = "Categories that have associated products cannot be deleted."
	MsgProductWithStock     = "Products with associated stock cannot be deleted."

	MsgEmailExists        = "Email already exists"
	MsgUserNameExists     = "Username already exists"
	MsgCannotDeleteSelf   = "You cannot delete yourself"
	MsgLastUser           = "At least one user must exist"
	MsgLastActiveUser     = "At least one active user must remain"
	MsgPasswordChanged    = "Password changed successfully"
	MsgPasswordResetSent  = "Password reset email sent"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInactiveAccount    = "User account is inactive"
	MsgLoginRequired      = "You must be logged in."
	MsgAccountInactive    = "Your account is inactive."
)

// MsgNotFound "<Entity> not found".
func MsgNotFound(entity string) string { return fmt.Sprintf("%s not found", entity) }

// MsgCreated "<Entity> created successfully".
func MsgCreated(entity string) string { return fmt.Sprintf("%s created successfully", entity) }

// MsgSaved "<Entity> saved successfully".
func MsgSaved(entity string) string { return fmt.Sprintf("%s saved successfully", entity) }

// MsgDeleted "<Entity> deleted successfully".
func MsgDeleted(entity string) string { return fmt.Sprintf("%s deleted successfully", entity) }

// MsgErrorDoing "Error <action> <entity>".
func MsgErrorDoing(action, entity string) string { return fmt.Sprintf("Error %s %s", action, entity) }

// MsgNoneSelected "No <entities> selected".
func MsgNoneSelected(entities string) string { return fmt.Sprintf("No %s selected", entities) }
