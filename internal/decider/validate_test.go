package decider_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/permit/internal/decider"
	"github.com/supremind/permit/internal/testdata"
	"github.com/supremind/permit/types"
)

var _ = Describe("table validation", func() {
	It("accepts a complete table", func() {
		Expect(decider.Validate(testdata.Schema(), testdata.Table())).To(Succeed())
	})

	It("refuses an empty schema", func() {
		e := decider.Validate(types.Schema{}, testdata.Table())
		Expect(errors.Is(e, types.ErrEmptySchema)).To(BeTrue())
	})

	It("refuses an empty table", func() {
		e := decider.Validate(testdata.Schema(), types.Table{})
		Expect(errors.Is(e, types.ErrEmptyTable)).To(BeTrue())
	})

	It("names every missing triple", func() {
		table := testdata.Table()
		delete(table[testdata.Auditor][testdata.Reports], testdata.ViewR)
		delete(table[testdata.Suspended], testdata.Accounts)

		e := decider.Validate(testdata.Schema(), table)
		Expect(errors.Is(e, types.ErrIncompleteTable)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("auditor/reports/view"))
		Expect(e.Error()).To(ContainSubstring("suspended/accounts/list"))
		Expect(e.Error()).To(ContainSubstring("suspended/accounts/suspend"))
	})

	It("refuses a rule on a resource the schema does not declare", func() {
		table := testdata.Table()
		table[testdata.Operator]["sessions"] = map[types.Action]types.Rule{
			"view": types.Grant(),
		}

		e := decider.Validate(testdata.Schema(), table)
		Expect(errors.Is(e, types.ErrUnknownResource)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("operator/sessions"))
	})

	It("refuses a rule on an action of another resource", func() {
		table := testdata.Table()
		table[testdata.Operator][testdata.Reports][testdata.SuspendA] = types.Grant()

		e := decider.Validate(testdata.Schema(), table)
		Expect(errors.Is(e, types.ErrUnknownAction)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("operator/reports/suspend"))
	})

	It("refuses a role missing a whole resource", func() {
		table := testdata.Table()
		delete(table[testdata.Auditor], testdata.Reports)

		e := decider.Validate(testdata.Schema(), table)
		Expect(errors.Is(e, types.ErrIncompleteTable)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("auditor/reports/export"))
		Expect(e.Error()).To(ContainSubstring("auditor/reports/view"))
	})
})
