// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/customer"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/ent/issue"
	"github.com/dediamond1/mechanic/ent/notification"
	"github.com/dediamond1/mechanic/ent/part"
	"github.com/dediamond1/mechanic/ent/schema"
	"github.com/dediamond1/mechanic/ent/servicecatalogitem"
	"github.com/dediamond1/mechanic/ent/servicerecord"
	"github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/ent/vehicle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields0[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescLaborCost is the schema descriptor for labor_cost field.
	appointmentDescLaborCost := appointmentFields[6].Descriptor()
	// appointment.LaborCostValidator is a validator for the "labor_cost" field. It is called by the builders before save.
	appointment.LaborCostValidator = appointmentDescLaborCost.Validators[0].(func(float64) error)
	// appointmentDescTotalCost is the schema descriptor for total_cost field.
	appointmentDescTotalCost := appointmentFields[7].Descriptor()
	// appointment.TotalCostValidator is a validator for the "total_cost" field. It is called by the builders before save.
	appointment.TotalCostValidator = appointmentDescTotalCost.Validators[0].(func(float64) error)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields0[0].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields0[1].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = func() func(string) error {
		validators := customerDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[2].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = func() func(string) error {
		validators := customerDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	employeeMixin := schema.Employee{}.Mixin()
	employeeMixinFields0 := employeeMixin[0].Fields()
	_ = employeeMixinFields0
	employeeFields := schema.Employee{}.Fields()
	_ = employeeFields
	// employeeDescCreatedAt is the schema descriptor for created_at field.
	employeeDescCreatedAt := employeeMixinFields0[0].Descriptor()
	// employee.DefaultCreatedAt holds the default value on creation for the created_at field.
	employee.DefaultCreatedAt = employeeDescCreatedAt.Default.(func() time.Time)
	// employeeDescUpdatedAt is the schema descriptor for updated_at field.
	employeeDescUpdatedAt := employeeMixinFields0[1].Descriptor()
	// employee.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	employee.DefaultUpdatedAt = employeeDescUpdatedAt.Default.(func() time.Time)
	// employee.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	employee.UpdateDefaultUpdatedAt = employeeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// employeeDescName is the schema descriptor for name field.
	employeeDescName := employeeFields[1].Descriptor()
	// employee.NameValidator is a validator for the "name" field. It is called by the builders before save.
	employee.NameValidator = func() func(string) error {
		validators := employeeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// employeeDescEmail is the schema descriptor for email field.
	employeeDescEmail := employeeFields[3].Descriptor()
	// employee.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	employee.EmailValidator = func() func(string) error {
		validators := employeeDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	issueMixin := schema.Issue{}.Mixin()
	issueMixinFields0 := issueMixin[0].Fields()
	_ = issueMixinFields0
	issueFields := schema.Issue{}.Fields()
	_ = issueFields
	// issueDescCreatedAt is the schema descriptor for created_at field.
	issueDescCreatedAt := issueMixinFields0[0].Descriptor()
	// issue.DefaultCreatedAt holds the default value on creation for the created_at field.
	issue.DefaultCreatedAt = issueDescCreatedAt.Default.(func() time.Time)
	// issueDescUpdatedAt is the schema descriptor for updated_at field.
	issueDescUpdatedAt := issueMixinFields0[1].Descriptor()
	// issue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	issue.DefaultUpdatedAt = issueDescUpdatedAt.Default.(func() time.Time)
	// issue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	issue.UpdateDefaultUpdatedAt = issueDescUpdatedAt.UpdateDefault.(func() time.Time)
	// issueDescDescription is the schema descriptor for description field.
	issueDescDescription := issueFields[1].Descriptor()
	// issue.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	issue.DescriptionValidator = issueDescDescription.Validators[0].(func(string) error)
	// issueDescReportedAt is the schema descriptor for reported_at field.
	issueDescReportedAt := issueFields[3].Descriptor()
	// issue.DefaultReportedAt holds the default value on creation for the reported_at field.
	issue.DefaultReportedAt = issueDescReportedAt.Default.(func() time.Time)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[6].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	partMixin := schema.Part{}.Mixin()
	partMixinFields0 := partMixin[0].Fields()
	_ = partMixinFields0
	partFields := schema.Part{}.Fields()
	_ = partFields
	// partDescCreatedAt is the schema descriptor for created_at field.
	partDescCreatedAt := partMixinFields0[0].Descriptor()
	// part.DefaultCreatedAt holds the default value on creation for the created_at field.
	part.DefaultCreatedAt = partDescCreatedAt.Default.(func() time.Time)
	// partDescUpdatedAt is the schema descriptor for updated_at field.
	partDescUpdatedAt := partMixinFields0[1].Descriptor()
	// part.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	part.DefaultUpdatedAt = partDescUpdatedAt.Default.(func() time.Time)
	// part.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	part.UpdateDefaultUpdatedAt = partDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partDescName is the schema descriptor for name field.
	partDescName := partFields[1].Descriptor()
	// part.NameValidator is a validator for the "name" field. It is called by the builders before save.
	part.NameValidator = func() func(string) error {
		validators := partDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partDescPrice is the schema descriptor for price field.
	partDescPrice := partFields[3].Descriptor()
	// part.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	part.PriceValidator = partDescPrice.Validators[0].(func(float64) error)
	// partDescQuantity is the schema descriptor for quantity field.
	partDescQuantity := partFields[4].Descriptor()
	// part.DefaultQuantity holds the default value on creation for the quantity field.
	part.DefaultQuantity = partDescQuantity.Default.(int)
	// part.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	part.QuantityValidator = partDescQuantity.Validators[0].(func(int) error)
	servicecatalogitemMixin := schema.ServiceCatalogItem{}.Mixin()
	servicecatalogitemMixinFields0 := servicecatalogitemMixin[0].Fields()
	_ = servicecatalogitemMixinFields0
	servicecatalogitemFields := schema.ServiceCatalogItem{}.Fields()
	_ = servicecatalogitemFields
	// servicecatalogitemDescCreatedAt is the schema descriptor for created_at field.
	servicecatalogitemDescCreatedAt := servicecatalogitemMixinFields0[0].Descriptor()
	// servicecatalogitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicecatalogitem.DefaultCreatedAt = servicecatalogitemDescCreatedAt.Default.(func() time.Time)
	// servicecatalogitemDescUpdatedAt is the schema descriptor for updated_at field.
	servicecatalogitemDescUpdatedAt := servicecatalogitemMixinFields0[1].Descriptor()
	// servicecatalogitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	servicecatalogitem.DefaultUpdatedAt = servicecatalogitemDescUpdatedAt.Default.(func() time.Time)
	// servicecatalogitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	servicecatalogitem.UpdateDefaultUpdatedAt = servicecatalogitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// servicecatalogitemDescName is the schema descriptor for name field.
	servicecatalogitemDescName := servicecatalogitemFields[1].Descriptor()
	// servicecatalogitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	servicecatalogitem.NameValidator = func() func(string) error {
		validators := servicecatalogitemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicecatalogitemDescPrice is the schema descriptor for price field.
	servicecatalogitemDescPrice := servicecatalogitemFields[3].Descriptor()
	// servicecatalogitem.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	servicecatalogitem.PriceValidator = servicecatalogitemDescPrice.Validators[0].(func(float64) error)
	// servicecatalogitemDescIsActive is the schema descriptor for is_active field.
	servicecatalogitemDescIsActive := servicecatalogitemFields[5].Descriptor()
	// servicecatalogitem.DefaultIsActive holds the default value on creation for the is_active field.
	servicecatalogitem.DefaultIsActive = servicecatalogitemDescIsActive.Default.(bool)
	servicerecordMixin := schema.ServiceRecord{}.Mixin()
	servicerecordMixinFields0 := servicerecordMixin[0].Fields()
	_ = servicerecordMixinFields0
	servicerecordFields := schema.ServiceRecord{}.Fields()
	_ = servicerecordFields
	// servicerecordDescCreatedAt is the schema descriptor for created_at field.
	servicerecordDescCreatedAt := servicerecordMixinFields0[0].Descriptor()
	// servicerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicerecord.DefaultCreatedAt = servicerecordDescCreatedAt.Default.(func() time.Time)
	// servicerecordDescUpdatedAt is the schema descriptor for updated_at field.
	servicerecordDescUpdatedAt := servicerecordMixinFields0[1].Descriptor()
	// servicerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	servicerecord.DefaultUpdatedAt = servicerecordDescUpdatedAt.Default.(func() time.Time)
	// servicerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	servicerecord.UpdateDefaultUpdatedAt = servicerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// servicerecordDescLaborCost is the schema descriptor for labor_cost field.
	servicerecordDescLaborCost := servicerecordFields[4].Descriptor()
	// servicerecord.LaborCostValidator is a validator for the "labor_cost" field. It is called by the builders before save.
	servicerecord.LaborCostValidator = servicerecordDescLaborCost.Validators[0].(func(float64) error)
	// servicerecordDescTotalCost is the schema descriptor for total_cost field.
	servicerecordDescTotalCost := servicerecordFields[5].Descriptor()
	// servicerecord.TotalCostValidator is a validator for the "total_cost" field. It is called by the builders before save.
	servicerecord.TotalCostValidator = servicerecordDescTotalCost.Validators[0].(func(float64) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[4].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[5].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
	vehicleMixin := schema.Vehicle{}.Mixin()
	vehicleMixinFields0 := vehicleMixin[0].Fields()
	_ = vehicleMixinFields0
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescCreatedAt is the schema descriptor for created_at field.
	vehicleDescCreatedAt := vehicleMixinFields0[0].Descriptor()
	// vehicle.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicle.DefaultCreatedAt = vehicleDescCreatedAt.Default.(func() time.Time)
	// vehicleDescUpdatedAt is the schema descriptor for updated_at field.
	vehicleDescUpdatedAt := vehicleMixinFields0[1].Descriptor()
	// vehicle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vehicle.DefaultUpdatedAt = vehicleDescUpdatedAt.Default.(func() time.Time)
	// vehicle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vehicle.UpdateDefaultUpdatedAt = vehicleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vehicleDescMake is the schema descriptor for make field.
	vehicleDescMake := vehicleFields[1].Descriptor()
	// vehicle.MakeValidator is a validator for the "make" field. It is called by the builders before save.
	vehicle.MakeValidator = func() func(string) error {
		validators := vehicleDescMake.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(make string) error {
			for _, fn := range fns {
				if err := fn(make); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vehicleDescModel is the schema descriptor for model field.
	vehicleDescModel := vehicleFields[2].Descriptor()
	// vehicle.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	vehicle.ModelValidator = func() func(string) error {
		validators := vehicleDescModel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(model string) error {
			for _, fn := range fns {
				if err := fn(model); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vehicleDescYear is the schema descriptor for year field.
	vehicleDescYear := vehicleFields[3].Descriptor()
	// vehicle.YearValidator is a validator for the "year" field. It is called by the builders before save.
	vehicle.YearValidator = vehicleDescYear.Validators[0].(func(int) error)
	// vehicleDescLicensePlate is the schema descriptor for license_plate field.
	vehicleDescLicensePlate := vehicleFields[4].Descriptor()
	// vehicle.LicensePlateValidator is a validator for the "license_plate" field. It is called by the builders before save.
	vehicle.LicensePlateValidator = func() func(string) error {
		validators := vehicleDescLicensePlate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(license_plate string) error {
			for _, fn := range fns {
				if err := fn(license_plate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vehicleDescVin is the schema descriptor for vin field.
	vehicleDescVin := vehicleFields[5].Descriptor()
	// vehicle.VinValidator is a validator for the "vin" field. It is called by the builders before save.
	vehicle.VinValidator = func() func(string) error {
		validators := vehicleDescVin.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(vin string) error {
			for _, fn := range fns {
				if err := fn(vin); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// vehicleDescMileage is the schema descriptor for mileage field.
	vehicleDescMileage := vehicleFields[6].Descriptor()
	// vehicle.MileageValidator is a validator for the "mileage" field. It is called by the builders before save.
	vehicle.MileageValidator = vehicleDescMileage.Validators[0].(func(int) error)
}
